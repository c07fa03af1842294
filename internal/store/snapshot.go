package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// Version is the current snapshot schema version.
const Version = 1

// snapshot is the on-disk layout of a persisted collection. The whole
// collection is rewritten on every save; there is no append log.
type snapshot[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// ErrVersionMismatch is returned when a snapshot file carries an unknown
// schema version.
var ErrVersionMismatch = fmt.Errorf("snapshot: unsupported schema version")

// Load reads the full collection from path. A missing file is reported via
// fs.ErrNotExist so callers can treat first-run and corruption differently.
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s snapshot[T]
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: decoding %s: %w", path, err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d in %s", ErrVersionMismatch, s.Version, path)
	}
	return s.Records, nil
}

// Save rewrites path with the full collection. The write is a plain
// overwrite; a crash mid-write leaves a truncated file that the next Load
// rejects as corrupt.
func Save[T any](path string, records []T) error {
	s := snapshot[T]{Version: Version, Records: records}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: writing %s: %w", path, err)
	}
	return nil
}
