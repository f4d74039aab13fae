package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/xando-series/internal/entity"
)

var ErrSeriesNotFound = errors.New("series not found")

type SeriesRepository interface {
	CreateOrUpdate(ctx context.Context, series *entity.Series) error
	GetByID(ctx context.Context, id string) (*entity.Series, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSeries struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSeriesRepository - ttl of zero keeps series until they are deleted.
func NewSeriesRepository(client *redis.Client, ttl time.Duration) SeriesRepository {
	return &dbSeries{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSeries) CreateOrUpdate(ctx context.Context, series *entity.Series) error {
	seriesJSON, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("could not marshal series: %w", err)
	}

	err = that.client.Set(ctx, seriesKey(series.ID), seriesJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set series: %w", err)
	}

	return nil
}

func (that *dbSeries) GetByID(ctx context.Context, id string) (*entity.Series, error) {
	response, err := that.client.Get(ctx, seriesKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Series{}, ErrSeriesNotFound
	}

	if err != nil {
		return &entity.Series{}, fmt.Errorf("failed to get series by id: %w", err)
	}

	var existingSeries entity.Series
	if err = json.Unmarshal([]byte(response), &existingSeries); err != nil {
		return &entity.Series{}, fmt.Errorf("failed to unmarshal series: %w", err)
	}

	return &existingSeries, nil
}

func (that *dbSeries) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, seriesKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete series by id: %w", err)
	}

	if deleted == 0 {
		return ErrSeriesNotFound
	}

	return nil
}

func seriesKey(id string) string {
	return "series:" + id
}
