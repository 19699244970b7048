package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	extractionHTTP "github.com/nadavsuissa/EmailManager-sub000/internal/extraction/delivery/http"
	"github.com/nadavsuissa/EmailManager-sub000/internal/middleware"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw                middleware.Middleware
	extractionHandler extractionHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ExtractionHandler extractionHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 cfg.Logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                middleware.New(cfg.Logger),
		extractionHandler: cfg.ExtractionHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionHandler == nil {
		return errors.New("extraction handler is required")
	}
	return nil
}
