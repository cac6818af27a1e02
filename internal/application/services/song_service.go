package services

import (
	"context"
	"fmt"

	"github.com/songchart/api/internal/domain/entities"
	"github.com/songchart/api/internal/infrastructure/logger"
	"github.com/songchart/api/internal/ports"
)

// SongService handles chart record operations
type SongService struct {
	songRepo ports.SongRepository
	logger   *logger.Logger
}

// NewSongService creates a new song service
func NewSongService(songRepo ports.SongRepository, logger *logger.Logger) *SongService {
	return &SongService{
		songRepo: songRepo,
		logger:   logger.WithComponent("song_service"),
	}
}

// ListSongs returns every song in insertion order
func (s *SongService) ListSongs(ctx context.Context) ([]entities.Song, error) {
	songs, err := s.songRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}

	return songs, nil
}

// GetSong retrieves a song by ID
func (s *SongService) GetSong(ctx context.Context, id int) (*entities.Song, error) {
	song, err := s.songRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get song %d: %w", id, err)
	}

	return song, nil
}

// CreateSong adds a new song with a caller-assigned ID
func (s *SongService) CreateSong(ctx context.Context, req ports.SongRequest) (*entities.Song, error) {
	song, err := req.ToEntity()
	if err != nil {
		return nil, err
	}

	created, err := s.songRepo.Create(ctx, song)
	if err != nil {
		return nil, fmt.Errorf("create song %d: %w", song.ID, err)
	}

	s.logger.Infow("Song created", "song_id", created.ID, "title", created.Title)

	return created, nil
}

// UpdateSong replaces the song stored under id with the request body
func (s *SongService) UpdateSong(ctx context.Context, id int, req ports.SongRequest) (*entities.Song, error) {
	song, err := req.ToEntity()
	if err != nil {
		return nil, err
	}

	if song.ID != id {
		s.logger.Warnw("Song body ID differs from path ID", "path_id", id, "body_id", song.ID)
	}

	updated, err := s.songRepo.Update(ctx, id, song)
	if err != nil {
		return nil, fmt.Errorf("update song %d: %w", id, err)
	}

	s.logger.Infow("Song updated", "song_id", id, "title", updated.Title)

	return updated, nil
}

// DeleteSong removes a song and returns it
func (s *SongService) DeleteSong(ctx context.Context, id int) (*entities.Song, error) {
	deleted, err := s.songRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete song %d: %w", id, err)
	}

	s.logger.Infow("Song deleted", "song_id", id)

	return deleted, nil
}

var _ ports.SongService = (*SongService)(nil)
