package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/xando-series/internal/entity"
)

const defaultHistoryLimit = 20

type HistoryRepository interface {
	Save(ctx context.Context, record *entity.SeriesRecord) error
	List(ctx context.Context, limit int) ([]entity.SeriesRecord, error)
}

type dbHistory struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &dbHistory{
		db: db,
	}
}

func (that *dbHistory) Save(ctx context.Context, record *entity.SeriesRecord) error {
	query := `INSERT INTO series_history
		(series_id, side_a_name, side_b_name, champion, wins_a, wins_b, rounds_to_win, rounds, ai_opponent, tier, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := that.db.ExecContext(ctx, query,
		record.SeriesID,
		record.SideAName,
		record.SideBName,
		record.Champion,
		record.WinsA,
		record.WinsB,
		record.RoundsToWin,
		record.Rounds,
		record.IsAIOpponent,
		int(record.Tier),
		record.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert series record: %w", err)
	}

	return nil
}

// List - newest first. A limit below one falls back to the default.
func (that *dbHistory) List(ctx context.Context, limit int) ([]entity.SeriesRecord, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}

	query := `SELECT series_id, side_a_name, side_b_name, champion, wins_a, wins_b, rounds_to_win, rounds, ai_opponent, tier, finished_at
		FROM series_history
		ORDER BY finished_at DESC
		LIMIT $1`

	rows, err := that.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query series history: %w", err)
	}
	defer rows.Close()

	records := make([]entity.SeriesRecord, 0, limit)
	for rows.Next() {
		var (
			record     entity.SeriesRecord
			tier       int
			finishedAt int64
		)

		err = rows.Scan(
			&record.SeriesID,
			&record.SideAName,
			&record.SideBName,
			&record.Champion,
			&record.WinsA,
			&record.WinsB,
			&record.RoundsToWin,
			&record.Rounds,
			&record.IsAIOpponent,
			&tier,
			&finishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan series record: %w", err)
		}

		record.Tier = entity.Tier(tier)
		record.FinishedAt = time.UnixMilli(finishedAt).UTC()
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read series history: %w", err)
	}

	return records, nil
}
