package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vmashkova/restopick/config"
	"github.com/vmashkova/restopick/models"
)

const (
	noMatchesMessage   = "Ничего не нашлось"
	queryFailedMessage = "Не получилось выполнить запрос, попробуйте позже"
)

type Server struct {
	cfg     *config.Config
	handler *Handler
}

func NewServer(cfg *config.Config, handler *Handler) *Server {
	return &Server{
		cfg:     cfg,
		handler: handler,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Сервис restopick работает! 🔥 Используйте /recommend для рекомендаций.")
	})

	r.GET("/recommend", s.recommend)

	return r
}

func (s *Server) recommend(ctx *gin.Context) {
	filters := models.FilterSet{}
	for _, c := range models.Categories {
		if v, ok := ctx.GetQuery(string(c)); ok && v != "" {
			filters[c] = v
		}
	}

	recs, err := s.handler.Recommend(ctx.Request.Context(), filters)
	if err != nil {
		slog.Error("recommendation failed", "filters", filters, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": queryFailedMessage})
		return
	}

	if len(recs) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"message": noMatchesMessage})
		return
	}

	ctx.JSON(http.StatusOK, recs)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Address(),
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}
