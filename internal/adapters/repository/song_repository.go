package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/songchart/api/internal/domain/entities"
	"github.com/songchart/api/internal/infrastructure/config"
)

// WriteObserver is notified after every attempt to persist the collection
type WriteObserver func(op string, size int, err error)

// SongRepository keeps the chart collection in memory and mirrors it to a
// single JSON file on every mutation.
type SongRepository struct {
	mu       sync.RWMutex
	songs    []entities.Song
	path     string
	atomic   bool
	observer WriteObserver
}

// Option configures a SongRepository
type Option func(*SongRepository)

// WithObserver registers a callback run after each persist
func WithObserver(fn WriteObserver) Option {
	return func(r *SongRepository) {
		r.observer = fn
	}
}

// NewSongRepository loads the backing file named in cfg. A missing file yields
// an empty collection and is not created until the first mutation.
func NewSongRepository(cfg config.StorageConfig, opts ...Option) (*SongRepository, error) {
	r := &SongRepository{
		path:   cfg.Path,
		atomic: cfg.AtomicWrite,
	}
	for _, opt := range opts {
		opt(r)
	}

	catalog, err := LoadCatalog(cfg.Path)
	if err != nil {
		return nil, err
	}
	r.songs = catalog.Songs

	return r, nil
}

// LoadCatalog reads and decodes a backing file without taking ownership of it
func LoadCatalog(path string) (*entities.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &entities.Catalog{Songs: []entities.Song{}}, nil
		}
		return nil, fmt.Errorf("failed to read songs file: %w", err)
	}

	var catalog entities.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode songs file %s: %w", path, err)
	}
	if catalog.Songs == nil {
		catalog.Songs = []entities.Song{}
	}

	return &catalog, nil
}

// List returns a copy of the collection in insertion order
func (r *SongRepository) List(ctx context.Context) ([]entities.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Song, len(r.songs))
	copy(out, r.songs)
	return out, nil
}

// GetByID returns the first song with the given ID
func (r *SongRepository) GetByID(ctx context.Context, id int) (*entities.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := entities.FindIndex(r.songs, id)
	if i < 0 {
		return nil, entities.ErrSongNotFound
	}
	song := r.songs[i]
	return &song, nil
}

// Create appends a song whose ID is not yet in the collection
func (r *SongRepository) Create(ctx context.Context, song entities.Song) (*entities.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if entities.FindIndex(r.songs, song.ID) >= 0 {
		return nil, entities.ErrSongAlreadyExists
	}

	r.songs = append(r.songs, song)
	if err := r.persist("create"); err != nil {
		return nil, err
	}

	return &song, nil
}

// Update replaces the song at the position of id. The replacement's own ID
// is stored as given, even when it differs from id.
func (r *SongRepository) Update(ctx context.Context, id int, song entities.Song) (*entities.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := entities.FindIndex(r.songs, id)
	if i < 0 {
		return nil, entities.ErrSongNotFound
	}

	r.songs[i] = song
	if err := r.persist("update"); err != nil {
		return nil, err
	}

	return &song, nil
}

// Delete removes the song with the given ID and returns it
func (r *SongRepository) Delete(ctx context.Context, id int) (*entities.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := entities.FindIndex(r.songs, id)
	if i < 0 {
		return nil, entities.ErrSongNotFound
	}

	removed := r.songs[i]
	r.songs = append(r.songs[:i], r.songs[i+1:]...)
	if err := r.persist("delete"); err != nil {
		return nil, err
	}

	return &removed, nil
}

// Count returns the current collection size
func (r *SongRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.songs)
}

// Path returns the backing file path
func (r *SongRepository) Path() string {
	return r.path
}

// HealthCheck verifies the directory holding the backing file is reachable
func (r *SongRepository) HealthCheck() error {
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("songs directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("songs directory unavailable: %s is not a directory", dir)
	}
	return nil
}

// persist serializes the whole collection. Callers hold the write lock.
// A failed write leaves the in-memory mutation in place.
func (r *SongRepository) persist(op string) error {
	err := r.write()
	if r.observer != nil {
		r.observer(op, len(r.songs), err)
	}
	if err != nil {
		return fmt.Errorf("failed to persist songs: %w", err)
	}
	return nil
}

func (r *SongRepository) write() error {
	data, err := encodeCatalog(r.songs)
	if err != nil {
		return err
	}

	if !r.atomic {
		return os.WriteFile(r.path, data, 0o644)
	}
	return writeFileAtomic(r.path, data)
}

func encodeCatalog(songs []entities.Song) ([]byte, error) {
	if songs == nil {
		songs = []entities.Song{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entities.Catalog{Songs: songs}); err != nil {
		return nil, fmt.Errorf("failed to encode songs: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
