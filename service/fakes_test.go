package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type fakeLogger struct {
	sync.Mutex
	lines []string
}

func (l *fakeLogger) log(level, msg string) {
	l.Lock()
	defer l.Unlock()
	l.lines = append(l.lines, fmt.Sprintf("[%s] %s", level, msg))
}

func (l *fakeLogger) Info(msg string)    { l.log("INFO", msg) }
func (l *fakeLogger) Warning(msg string) { l.log("WARNING", msg) }
func (l *fakeLogger) Error(msg string)   { l.log("ERROR", msg) }
func (l *fakeLogger) Debug(msg string)   { l.log("DEBUG", msg) }

func (l *fakeLogger) count(level string) int {
	l.Lock()
	defer l.Unlock()
	n := 0
	for _, line := range l.lines {
		if strings.HasPrefix(line, "["+level+"]") {
			n++
		}
	}
	return n
}

type fakeMazeRepo struct {
	sync.Mutex
	mazes     map[uuid.UUID]*dmn.Maze
	saves     int
	lastLimit int64
	saveErr   error
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{mazes: make(map[uuid.UUID]*dmn.Maze)}
}

func (r *fakeMazeRepo) Save(_ context.Context, m *dmn.Maze) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.mazes[m.ID] = m
	return nil
}

func (r *fakeMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Maze, error) {
	r.Lock()
	defer r.Unlock()
	m, ok := r.mazes[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return m, nil
}

func (r *fakeMazeRepo) ByOwner(_ context.Context, owner uuid.UUID, limit int64) ([]*dmn.Maze, error) {
	r.Lock()
	defer r.Unlock()
	r.lastLimit = limit
	mazes := make([]*dmn.Maze, 0)
	for _, m := range r.mazes {
		if m.OwnerID == owner && int64(len(mazes)) < limit {
			mazes = append(mazes, m)
		}
	}
	return mazes, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]dmn.Maze
	locks   map[string]*sync.Mutex
	sets    int
	getErr  error
	lockErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string]dmn.Maze),
		locks:   make(map[string]*sync.Mutex),
	}
}

func (c *fakeCache) Get(_ context.Context, key string) (*dmn.Maze, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	m, ok := c.entries[key]
	if !ok {
		return nil, dmn.ErrCacheMiss
	}
	return &m, nil
}

func (c *fakeCache) Set(_ context.Context, key string, m *dmn.Maze) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[key] = *m
	return nil
}

func (c *fakeCache) Lock(_ context.Context, key string) (func(), error) {
	c.mu.Lock()
	if c.lockErr != nil {
		c.mu.Unlock()
		return nil, c.lockErr
	}
	mu, ok := c.locks[key]
	if !ok {
		mu = &sync.Mutex{}
		c.locks[key] = mu
	}
	c.mu.Unlock()

	mu.Lock()
	return mu.Unlock, nil
}

type fakeUserRepo struct {
	sync.Mutex
	users   map[string]*dmn.User
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*dmn.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, u *dmn.User) error {
	r.Lock()
	defer r.Unlock()
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.User, error) {
	r.Lock()
	defer r.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

func (r *fakeUserRepo) ByUsername(_ context.Context, username string) (*dmn.User, error) {
	r.Lock()
	defer r.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, dmn.ErrUserNotFound
	}
	return u, nil
}

type fakeTokenizer struct {
	claims map[string]interface{}
	err    error
}

func (t *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	t.claims = claims
	return "token", nil
}

func (t *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return t.claims, nil
}
