package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seekerhq/seeker/config"
	"github.com/seekerhq/seeker/models"
)

// Agent answers questions, optionally grounded in fresh web search results.
type Agent interface {
	AskQuestion(ctx context.Context, question string, allowWebSearch bool) (models.AnswerResult, error)
}

// Run wires the HTTP surface and serves it until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, agent Agent) error {
	e := newEcho(cfg, agent)

	log.Printf("model: %s", cfg.LLM.Model)
	log.Printf("allowed origins: %v", cfg.Server.CORSOrigins)
	if cfg.LLM.APIKey == "" {
		log.Printf("WARNING: llm api key not set; answer synthesis will fail")
	}
	if cfg.Search.APIKey == "" {
		log.Printf("WARNING: search api key not set; questions will be answered without search")
	}
	log.Printf("listening on %s", cfg.Server.Addr)

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(cfg.Server.Addr) }()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func newEcho(cfg *config.Config, agent Agent) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))

	e.GET("/", health)
	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	qh := &QueryHandler{Agent: agent}
	qh.Register(e.Group("/api"))

	return e
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": "1.0.0"})
}
