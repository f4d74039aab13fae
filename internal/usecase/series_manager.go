package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/xando-series/internal/entity"
	"github.com/rocketscienceinc/xando-series/internal/tictactoe"
)

type seriesRepo interface {
	CreateOrUpdate(ctx context.Context, series *entity.Series) error
	GetByID(ctx context.Context, id string) (*entity.Series, error)
	DeleteByID(ctx context.Context, id string) error
}

type historyRepo interface {
	Save(ctx context.Context, record *entity.SeriesRecord) error
	List(ctx context.Context, limit int) ([]entity.SeriesRecord, error)
}

// TurnResult is the state after one move together with what the move did.
type TurnResult struct {
	Series   *entity.Series      `json:"series"`
	Position entity.Position     `json:"position"`
	Outcome  entity.RoundOutcome `json:"outcome"`
}

// SeriesManager keeps series between requests. Every operation loads the snapshot,
// applies one step through a SeriesController and stores it again. Operations are
// serialised, which also keeps the shared random source single-threaded.
type SeriesManager struct {
	logger *slog.Logger

	seriesRepo  seriesRepo
	historyRepo historyRepo
	bot         tictactoe.Bot

	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewSeriesManager(logger *slog.Logger, seriesRepo seriesRepo, historyRepo historyRepo, bot tictactoe.Bot, rnd *rand.Rand) *SeriesManager {
	return &SeriesManager{
		logger: logger.With("component", "series_manager"),

		seriesRepo:  seriesRepo,
		historyRepo: historyRepo,
		bot:         bot,

		rnd: rnd,
		now: time.Now,
	}
}

// CreateSeries - validates the setup, starts the first round and stores the series.
func (that *SeriesManager) CreateSeries(ctx context.Context, cfg tictactoe.SeriesConfig) (*entity.Series, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := tictactoe.NewSeries(cfg, that.bot, that.rnd)
	if err != nil {
		return nil, fmt.Errorf("failed to create series: %w", err)
	}

	controller.SetID(uuid.NewString())

	if _, _, err = controller.StartRound(); err != nil {
		return nil, fmt.Errorf("failed to start first round: %w", err)
	}

	series, err := that.save(ctx, controller)
	if err != nil {
		return nil, err
	}

	that.logger.Info("series created",
		"seriesID", series.ID,
		"ai", series.Match.IsAIOpponent,
		"tier", series.Match.Tier.String(),
		"roundsToWin", series.Match.RoundsToWin,
		"starter", series.Match.CurrentStarter)

	return series, nil
}

func (that *SeriesManager) GetSeries(ctx context.Context, id string) (*entity.Series, error) {
	series, err := that.seriesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	return series, nil
}

// MakeTurn - applies a human move.
func (that *SeriesManager) MakeTurn(ctx context.Context, id string, position entity.Position) (*TurnResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome, err := controller.ApplyHumanMove(position)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return that.finishTurn(ctx, controller, position, outcome)
}

// MakeAITurn - lets the computer play its move.
func (that *SeriesManager) MakeAITurn(ctx context.Context, id string) (*TurnResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	position, outcome, err := controller.RequestAIMove()
	if err != nil {
		return nil, fmt.Errorf("failed to make ai turn: %w", err)
	}

	return that.finishTurn(ctx, controller, position, outcome)
}

// NextRound - starts the following round of an unfinished series.
func (that *SeriesManager) NextRound(ctx context.Context, id string) (*entity.Series, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, _, err = controller.StartRound(); err != nil {
		return nil, fmt.Errorf("failed to start round: %w", err)
	}

	return that.save(ctx, controller)
}

// Replay - plays the series again with the same players and setup.
func (that *SeriesManager) Replay(ctx context.Context, id string) (*entity.Series, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	match := controller.ReplaySeries()

	that.logger.Info("series replayed", "seriesID", id, "starter", match.CurrentStarter)

	return that.save(ctx, controller)
}

// Abandon - forgets a series without recording it.
func (that *SeriesManager) Abandon(ctx context.Context, id string) error {
	if err := that.seriesRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete series: %w", err)
	}

	return nil
}

// History - the most recent finished series first.
func (that *SeriesManager) History(ctx context.Context, limit int) ([]entity.SeriesRecord, error) {
	records, err := that.historyRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return records, nil
}

func (that *SeriesManager) finishTurn(ctx context.Context, controller *tictactoe.SeriesController, position entity.Position, outcome entity.RoundOutcome) (*TurnResult, error) {
	series, err := that.save(ctx, controller)
	if err != nil {
		return nil, err
	}

	if outcome.Kind != entity.OutcomeContinue {
		that.logger.Info("round finished",
			"seriesID", series.ID,
			"round", series.Match.RoundNumber,
			"outcome", outcome.Kind,
			"winner", outcome.Winner,
			"score", series.Match.Score())
	}

	if _, over := controller.IsSeriesOver(); over {
		that.recordChampion(ctx, series)
	}

	return &TurnResult{
		Series:   series,
		Position: position,
		Outcome:  outcome,
	}, nil
}

// recordChampion - a failed history write is logged, the series itself is already saved.
func (that *SeriesManager) recordChampion(ctx context.Context, series *entity.Series) {
	log := that.logger.With("method", "recordChampion", "seriesID", series.ID)

	record := entity.NewSeriesRecord(series, that.now())
	if err := that.historyRepo.Save(ctx, &record); err != nil {
		log.Error("failed to save series history", "error", err)
		return
	}

	log.Info("champion declared", "champion", record.Champion, "score", series.Match.Score())
}

func (that *SeriesManager) load(ctx context.Context, id string) (*tictactoe.SeriesController, error) {
	series, err := that.seriesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	controller, err := tictactoe.Restore(*series, that.bot, that.rnd)
	if err != nil {
		return nil, fmt.Errorf("failed to restore series: %w", err)
	}

	return controller, nil
}

func (that *SeriesManager) save(ctx context.Context, controller *tictactoe.SeriesController) (*entity.Series, error) {
	series := controller.Snapshot()
	series.UpdatedAt = that.now()

	if err := that.seriesRepo.CreateOrUpdate(ctx, &series); err != nil {
		return nil, fmt.Errorf("failed to update series: %w", err)
	}

	return &series, nil
}
