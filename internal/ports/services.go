package ports

import (
	"context"

	"github.com/songchart/api/internal/domain/entities"
)

// SongService interface for chart record operations
type SongService interface {
	ListSongs(ctx context.Context) ([]entities.Song, error)
	GetSong(ctx context.Context, id int) (*entities.Song, error)
	CreateSong(ctx context.Context, req SongRequest) (*entities.Song, error)
	UpdateSong(ctx context.Context, id int, req SongRequest) (*entities.Song, error)
	DeleteSong(ctx context.Context, id int) (*entities.Song, error)
}

// SongRequest is the request body for create and update. Pointer fields let
// the validator tell a missing field apart from a zero value.
type SongRequest struct {
	ID           *int    `json:"id" validate:"required"`
	Title        *string `json:"title" validate:"required"`
	Artist       *string `json:"artist" validate:"required"`
	Genre        *string `json:"genre" validate:"required"`
	PeakPosition *int    `json:"peak_position" validate:"required"`
	WeeksOnChart *int    `json:"weeks_on_chart" validate:"required"`
}

// ToEntity converts a validated request into a song
func (r SongRequest) ToEntity() (entities.Song, error) {
	if r.ID == nil || r.Title == nil || r.Artist == nil || r.Genre == nil ||
		r.PeakPosition == nil || r.WeeksOnChart == nil {
		return entities.Song{}, entities.ErrInvalidSong
	}

	return entities.Song{
		ID:           *r.ID,
		Title:        *r.Title,
		Artist:       *r.Artist,
		Genre:        *r.Genre,
		PeakPosition: *r.PeakPosition,
		WeeksOnChart: *r.WeeksOnChart,
	}, nil
}
