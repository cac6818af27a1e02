package ports

import (
	"context"

	"github.com/songchart/api/internal/domain/entities"
)

// SongRepository defines the interface for song data operations
type SongRepository interface {
	List(ctx context.Context) ([]entities.Song, error)
	GetByID(ctx context.Context, id int) (*entities.Song, error)
	Create(ctx context.Context, song entities.Song) (*entities.Song, error)
	Update(ctx context.Context, id int, song entities.Song) (*entities.Song, error)
	Delete(ctx context.Context, id int) (*entities.Song, error)
	Count() int
	HealthCheck() error
	Path() string
}
