package api

import (
	"github.com/beka-birhanu/vinom-mazegen/api/i"
	"github.com/gin-gonic/gin"
)

const apiVersion = "/v1"

// Router serves the maze API. Account routes are open; carving, listing,
// exporting and live streaming of mazes need a bearer token.
type Router struct {
	addr        string
	baseURL     string
	ginMode     string
	controllers []i.Controller
	requireUser gin.HandlerFunc
}

// Config wires the controllers and the token check into a Router.
type Config struct {
	Addr                    string
	BaseURL                 string
	GinMode                 string // gin.DebugMode, gin.ReleaseMode or gin.TestMode
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
}

func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		ginMode:     config.GinMode,
		controllers: config.Controllers,
		requireUser: config.AuthorizationMiddleware,
	}
}

// Handler mounts every controller under <baseURL>/v1. Routes registered
// through RegisterProtected only run once requireUser has stored the caller.
func (r *Router) Handler() *gin.Engine {
	if r.ginMode != "" {
		gin.SetMode(r.ginMode)
	}
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	v1 := engine.Group(r.baseURL + apiVersion)
	authed := v1.Group("", r.requireUser)
	for _, c := range r.controllers {
		c.RegisterPublic(v1)
		c.RegisterProtected(authed)
	}

	return engine
}

// Run blocks serving the maze API on the configured address.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}
