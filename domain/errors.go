package domain

import "errors"

// Persistence errors shared by the repositories, the cache and the services.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrMazeNotFound  = errors.New("maze not found")
	ErrCacheMiss     = errors.New("cache miss")
)
