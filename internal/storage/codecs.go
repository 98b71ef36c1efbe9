package storage

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cast"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
)

// StatCodec maps StatRecord to the timestamp,count,uniques CSV layout.
type StatCodec struct{}

func (StatCodec) Header() []string {
	return []string{"timestamp", "count", "uniques"}
}

func (StatCodec) Encode(rec models.StatRecord) []string {
	return []string{
		rec.Timestamp.UTC().Format(models.SeriesTimeLayout),
		strconv.Itoa(rec.Count),
		strconv.Itoa(rec.Uniques),
	}
}

func (StatCodec) Decode(row []string) (models.StatRecord, error) {
	if len(row) != 3 {
		return models.StatRecord{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}
	ts, err := time.Parse(models.SeriesTimeLayout, row[0])
	if err != nil {
		return models.StatRecord{}, err
	}
	count, err := cast.ToIntE(row[1])
	if err != nil {
		return models.StatRecord{}, err
	}
	uniques, err := cast.ToIntE(row[2])
	if err != nil {
		return models.StatRecord{}, err
	}
	return models.StatRecord{Timestamp: ts, Count: count, Uniques: uniques}, nil
}

// StarCodec maps StarRecord to the user,starred_at CSV layout.
type StarCodec struct{}

func (StarCodec) Header() []string {
	return []string{"user", "starred_at"}
}

func (StarCodec) Encode(rec models.StarRecord) []string {
	return []string{
		rec.User,
		rec.StarredAt.UTC().Format(models.SeriesTimeLayout),
	}
}

func (StarCodec) Decode(row []string) (models.StarRecord, error) {
	if len(row) != 2 {
		return models.StarRecord{}, fmt.Errorf("expected 2 columns, got %d", len(row))
	}
	ts, err := time.Parse(models.SeriesTimeLayout, row[1])
	if err != nil {
		return models.StarRecord{}, err
	}
	return models.StarRecord{User: row[0], StarredAt: ts}, nil
}
