package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"safesign/internal/model"
)

// snapshotFile is the on-disk layout of a store snapshot.
type snapshotFile struct {
	SavedAt   time.Time         `json:"savedAt"`
	Documents []*model.Document `json:"documents"`
}

// Snapshotter periodically writes the store contents to a JSON file and
// restores them at startup. Writes go through a temp file and rename so
// a crash mid-write never truncates the previous snapshot.
type Snapshotter struct {
	store    *DocumentMemory
	path     string
	interval time.Duration
	log      *zap.Logger
	stop     chan struct{}
	done     chan struct{}
}

// NewSnapshotter wires snapshot persistence for store at path.
func NewSnapshotter(store *DocumentMemory, path string, interval time.Duration, log *zap.Logger) *Snapshotter {
	return &Snapshotter{
		store:    store,
		path:     path,
		interval: interval,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Restore loads the snapshot file into the store. A missing file is not
// an error; the store simply starts empty.
func (s *Snapshotter) Restore() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	s.store.load(snap.Documents)
	s.log.Info("snapshot restored",
		zap.String("path", s.path),
		zap.Int("documents", len(snap.Documents)),
		zap.Time("savedAt", snap.SavedAt),
	)
	return nil
}

// Flush writes the current store contents to disk unconditionally.
func (s *Snapshotter) Flush() error {
	snap := snapshotFile{
		SavedAt:   time.Now().UTC(),
		Documents: s.store.snapshotAll(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Run autosaves on the configured interval until ctx is cancelled or
// Stop is called. Unchanged stores are skipped.
func (s *Snapshotter) Run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.store.isDirty() {
				continue
			}
			if err := s.Flush(); err != nil {
				s.log.Error("snapshot autosave failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		}
	}
}

// Stop halts the autosave loop and writes a final snapshot.
func (s *Snapshotter) Stop() error {
	close(s.stop)
	<-s.done
	return s.Flush()
}
