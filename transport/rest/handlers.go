package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
	"github.com/rocketscienceinc/xando-series/internal/entity"
	"github.com/rocketscienceinc/xando-series/internal/repository"
	"github.com/rocketscienceinc/xando-series/internal/tictactoe"
	"github.com/rocketscienceinc/xando-series/internal/usecase"
)

const defaultHistoryLimit = 20

type Handlers interface {
	CreateSeries(w http.ResponseWriter, r *http.Request)
	GetSeries(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	MakeAITurn(w http.ResponseWriter, r *http.Request)
	NextRound(w http.ResponseWriter, r *http.Request)
	Replay(w http.ResponseWriter, r *http.Request)
	Abandon(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type seriesService interface {
	CreateSeries(ctx context.Context, cfg tictactoe.SeriesConfig) (*entity.Series, error)
	GetSeries(ctx context.Context, id string) (*entity.Series, error)
	MakeTurn(ctx context.Context, id string, position entity.Position) (*usecase.TurnResult, error)
	MakeAITurn(ctx context.Context, id string) (*usecase.TurnResult, error)
	NextRound(ctx context.Context, id string) (*entity.Series, error)
	Replay(ctx context.Context, id string) (*entity.Series, error)
	Abandon(ctx context.Context, id string) error
	History(ctx context.Context, limit int) ([]entity.SeriesRecord, error)
}

type handlers struct {
	logger        *slog.Logger
	seriesService seriesService
	defaultBestOf int
}

type createSeriesRequest struct {
	SideAName  string `json:"side_a_name"`
	SideBName  string `json:"side_b_name"`
	AIOpponent bool   `json:"ai_opponent"`
	Tier       string `json:"tier"`
	BestOf     int    `json:"best_of"`
}

type moveRequest struct {
	Position entity.Position `json:"position"`
}

type seriesView struct {
	ID       string            `json:"id"`
	Match    entity.MatchState `json:"match"`
	Round    entity.Round      `json:"round"`
	Score    string            `json:"score"`
	Champion string            `json:"champion,omitempty"`
}

type moveView struct {
	seriesView
	Position entity.Position     `json:"position"`
	Outcome  entity.RoundOutcome `json:"outcome"`
}

type errorView struct {
	Error string `json:"error"`
}

func NewHandlers(logger *slog.Logger, seriesService seriesService, defaultBestOf int) Handlers {
	return &handlers{
		logger:        logger.With("component", "rest"),
		seriesService: seriesService,
		defaultBestOf: defaultBestOf,
	}
}

func (that *handlers) CreateSeries(w http.ResponseWriter, r *http.Request) {
	var request createSeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorView{Error: "invalid request body"})
		return
	}

	cfg, err := that.seriesConfig(request)
	if err != nil {
		that.writeError(w, err)
		return
	}

	series, err := that.seriesService.CreateSeries(r.Context(), cfg)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newSeriesView(series))
}

func (that *handlers) GetSeries(w http.ResponseWriter, r *http.Request) {
	series, err := that.seriesService.GetSeries(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSeriesView(series))
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var request moveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorView{Error: "invalid request body"})
		return
	}

	result, err := that.seriesService.MakeTurn(r.Context(), chi.URLParam(r, "id"), request.Position)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newMoveView(result))
}

func (that *handlers) MakeAITurn(w http.ResponseWriter, r *http.Request) {
	result, err := that.seriesService.MakeAITurn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newMoveView(result))
}

func (that *handlers) NextRound(w http.ResponseWriter, r *http.Request) {
	series, err := that.seriesService.NextRound(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSeriesView(series))
}

func (that *handlers) Replay(w http.ResponseWriter, r *http.Request) {
	series, err := that.seriesService.Replay(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSeriesView(series))
}

func (that *handlers) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := that.seriesService.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) History(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			that.writeJSON(w, http.StatusBadRequest, errorView{Error: "limit must be a positive number"})
			return
		}
		limit = parsed
	}

	records, err := that.seriesService.History(r.Context(), limit)
	if err != nil {
		that.writeError(w, err)
		return
	}

	if records == nil {
		records = []entity.SeriesRecord{}
	}

	that.writeJSON(w, http.StatusOK, records)
}

func (that *handlers) seriesConfig(request createSeriesRequest) (tictactoe.SeriesConfig, error) {
	bestOf := request.BestOf
	if bestOf == 0 {
		bestOf = that.defaultBestOf
	}

	roundsToWin, err := entity.RoundsToWinForBestOf(bestOf)
	if err != nil {
		return tictactoe.SeriesConfig{}, err
	}

	cfg := tictactoe.SeriesConfig{
		SideAName:    request.SideAName,
		SideBName:    request.SideBName,
		IsAIOpponent: request.AIOpponent,
		RoundsToWin:  roundsToWin,
	}

	if request.AIOpponent {
		if cfg.Tier, err = entity.ParseTier(request.Tier); err != nil {
			return tictactoe.SeriesConfig{}, err
		}
	}

	return cfg, nil
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorView{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidPosition), errors.Is(err, apperror.ErrInvalidConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrRoundNotInProgress):
		return http.StatusConflict
	case errors.Is(err, repository.ErrSeriesNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func newSeriesView(series *entity.Series) seriesView {
	view := seriesView{
		ID:    series.ID,
		Match: series.Match,
		Round: series.Round,
		Score: series.Match.Score(),
	}

	if champion, ok := series.Match.Champion(); ok {
		view.Champion = series.Match.Name(champion)
	}

	return view
}

func newMoveView(result *usecase.TurnResult) moveView {
	return moveView{
		seriesView: newSeriesView(result.Series),
		Position:   result.Position,
		Outcome:    result.Outcome,
	}
}
