package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	ping "github.com/rocketscienceinc/xando-series/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - routes of the series API.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Get("/ping", ping.PingHandler)
	r.Get("/history", h.History)

	r.Post("/series", h.CreateSeries)
	r.Route("/series/{id}", func(r chi.Router) {
		r.Get("/", h.GetSeries)
		r.Delete("/", h.Abandon)
		r.Post("/moves", h.MakeTurn)
		r.Post("/ai-move", h.MakeAITurn)
		r.Post("/next-round", h.NextRound)
		r.Post("/replay", h.Replay)
	})

	return r
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
