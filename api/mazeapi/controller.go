package mazeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/api/identity"
	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/export"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxImageScale   = 16
	generateTimeout = 30 * time.Second
	lookupTimeout   = 2 * time.Second
	liveFrameEvent  = "frame"
	liveEndEvent    = "end"
	defaultLiveFPS  = 10
)

var ErrNilService = errors.New("mazeapi: nil service")

// MazeController serves generation, lookup, image export and live streams.
type MazeController struct {
	generator i.MazeGenerator
	live      i.LiveStarter
	logger    i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator, l i.LiveStarter, logger i.Logger) (*MazeController, error) {
	if g == nil || l == nil || logger == nil {
		return nil, ErrNilService
	}
	return &MazeController{
		generator: g,
		live:      l,
		logger:    logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.list)
		mazes.GET("/live", mc.stream)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/image", mc.image)
	}
}

// generate carves a maze for the authenticated user.
func (mc *MazeController) generate(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := request.Config()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), generateTimeout)
	defer cancel()

	m, err := mc.generator.Generate(timeoutCtx, owner, config)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, m)
}

// list returns the newest mazes of the authenticated user.
func (mc *MazeController) list(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), lookupTimeout)
	defer cancel()

	mazes, err := mc.generator.ByOwner(timeoutCtx, owner)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	summaries := make([]MazeSummary, 0, len(mazes))
	for _, m := range mazes {
		summaries = append(summaries, newMazeSummary(m))
	}
	ctx.JSON(http.StatusOK, summaries)
}

// byID returns a maze of the authenticated user with its cells.
func (mc *MazeController) byID(ctx *gin.Context) {
	m, ok := mc.owned(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, m)
}

// image renders a maze of the authenticated user.
func (mc *MazeController) image(ctx *gin.Context) {
	format, err := export.ParseFormat(ctx.Query("format"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scale, err := strconv.Atoi(ctx.DefaultQuery("scale", "1"))
	if err != nil || scale < 1 || scale > maxImageScale {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("scale must be between 1 and %d", maxImageScale)})
		return
	}

	m, ok := mc.owned(ctx)
	if !ok {
		return
	}

	snapshot, err := m.Snapshot()
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.Header("Content-Type", format.ContentType())
	ctx.Status(http.StatusOK)
	if err := export.Encode(ctx.Writer, snapshot, format, scale); err != nil {
		mc.logger.Error(fmt.Sprintf("Encoding maze %s: %v", m.ID, err))
	}
}

// stream runs a paced generation and pushes every tick as a server-sent event.
func (mc *MazeController) stream(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.FPS == 0 {
		request.FPS = defaultLiveFPS
	}

	config, err := request.Config()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := mc.live.StartLive(ctx.Request.Context(), config, request.FPS)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	defer session.Stop()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case frame, ok := <-session.Frames():
			if !ok {
				ctx.SSEvent(liveEndEvent, <-session.End())
				return false
			}
			ctx.SSEvent(liveFrameEvent, frame)
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}

// owned loads the :ID maze and checks it belongs to the caller. It writes
// the error response itself.
func (mc *MazeController) owned(ctx *gin.Context) (*dmn.Maze, bool) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return nil, false
	}

	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return nil, false
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), lookupTimeout)
	defer cancel()

	m, err := mc.generator.ByID(timeoutCtx, id)
	if err != nil {
		mc.fail(ctx, err)
		return nil, false
	}

	if m.OwnerID != owner {
		mc.fail(ctx, dmn.ErrMazeNotFound)
		return nil, false
	}
	return m, true
}

// fail maps err to a status code and writes it.
func (mc *MazeController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMazeTooLarge),
		errors.Is(err, service.ErrTooManyHeads):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case isConfigError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "generation timed out"})
	default:
		mc.logger.Error(fmt.Sprintf("Request %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func isConfigError(err error) bool {
	for _, target := range []error{
		maze.ErrInvalidDimensions,
		maze.ErrInvalidStep,
		maze.ErrInvalidHeadCount,
		maze.ErrInvalidSwitchChance,
		maze.ErrUnknownMode,
		maze.ErrInvalidStart,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
