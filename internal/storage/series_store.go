package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ross-rotordynamics/ross-bott/internal/providers"
)

// Codec converts one record to and from a CSV row.
type Codec[T any] interface {
	Header() []string
	Encode(rec T) []string
	Decode(row []string) (T, error)
}

// Mirror copies persisted files to object storage and back.
type Mirror interface {
	Upload(ctx context.Context, name string, data []byte) error
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// SeriesStore persists an append-only dated series as a local CSV file
// mirrored to object storage under the same name. Merge/dedup policy lives
// with the caller; the store only loads and saves complete series.
type SeriesStore[T any] struct {
	dir     string
	name    string
	codec   Codec[T]
	mirror  Mirror
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewSeriesStore[T any](dir, name string, codec Codec[T], mirror Mirror, logger providers.Logger, metrics providers.MetricsProviderInterface) *SeriesStore[T] {
	return &SeriesStore[T]{
		dir:     dir,
		name:    name,
		codec:   codec,
		mirror:  mirror,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *SeriesStore[T]) path() string {
	return filepath.Join(s.dir, s.name)
}

// Load reads the series, preferring the object storage mirror and falling
// back to the local file. A series that exists in neither place is empty,
// not an error. A file that exists but does not parse is an error: corrupt
// persisted data must abort the refresh cycle rather than overwrite history.
func (s *SeriesStore[T]) Load(ctx context.Context) ([]T, error) {
	data, err := s.mirror.Fetch(ctx, s.name)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf(providers.TypeStats, "Mirror fetch of %s failed, using local copy: %s", s.name, err)
			s.metrics.IncMirrorErrors("fetch")
		}
		data, err = os.ReadFile(s.path())
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
	}
	return s.decode(data)
}

func (s *SeriesStore[T]) decode(data []byte) ([]T, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("corrupt series file %s: %w", s.name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]T, 0, len(rows)-1)
	for _, row := range rows[1:] { // skip header
		rec, err := s.codec.Decode(row)
		if err != nil {
			return nil, fmt.Errorf("corrupt series file %s: %w", s.name, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save writes the series to the local file atomically (tmp + fsync + rename)
// and mirrors the bytes to object storage. A mirror failure is logged and
// counted but does not fail the save: the local copy stays authoritative
// until the next successful upload.
func (s *SeriesStore[T]) Save(ctx context.Context, records []T) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(s.codec.Header()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writer.Write(s.codec.Encode(rec)); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	if err := s.writeAtomic(buf.Bytes()); err != nil {
		return err
	}

	if err := s.mirror.Upload(ctx, s.name, buf.Bytes()); err != nil {
		s.logger.Errorf(providers.TypeStats, "Mirror upload of %s failed: %s", s.name, err)
		s.metrics.IncMirrorErrors("upload")
	}
	return nil
}

func (s *SeriesStore[T]) writeAtomic(data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	fileName := s.path()
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
