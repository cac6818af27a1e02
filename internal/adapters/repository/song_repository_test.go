package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songchart/api/internal/domain/entities"
	"github.com/songchart/api/internal/infrastructure/config"
)

func newTestRepo(t *testing.T, atomic bool) (*SongRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.json")
	repo, err := NewSongRepository(config.StorageConfig{Path: path, AtomicWrite: atomic})
	require.NoError(t, err)
	return repo, path
}

func song(id int, title string) entities.Song {
	return entities.Song{ID: id, Title: title, Artist: "X", Genre: "Pop", PeakPosition: 5, WeeksOnChart: 10}
}

func reload(t *testing.T, path string) []entities.Song {
	t.Helper()
	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	return catalog.Songs
}

func TestNewSongRepository_MissingFile(t *testing.T) {
	repo, path := newTestRepo(t, true)

	songs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, songs)
	assert.NotNil(t, songs)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file must not be created before the first mutation")
}

func TestNewSongRepository_LoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.json")
	body := `{"songs": [{"id": 2, "title": "B", "artist": "Y", "genre": "Rock", "peak_position": 1, "weeks_on_chart": 3},
		{"id": 1, "title": "A", "artist": "X", "genre": "Pop", "peak_position": 5, "weeks_on_chart": 10}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	repo, err := NewSongRepository(config.StorageConfig{Path: path})
	require.NoError(t, err)

	songs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, 2, songs[0].ID)
	assert.Equal(t, "A", songs[1].Title)
}

func TestNewSongRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewSongRepository(config.StorageConfig{Path: path})
	assert.Error(t, err)
}

func TestCreate_PreservesInsertionOrder(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		t.Run(fmt.Sprintf("atomic=%t", atomic), func(t *testing.T) {
			repo, path := newTestRepo(t, atomic)
			ctx := context.Background()

			ids := []int{7, 3, 9, 1}
			for _, id := range ids {
				created, err := repo.Create(ctx, song(id, fmt.Sprintf("t%d", id)))
				require.NoError(t, err)
				assert.Equal(t, id, created.ID)
			}

			songs, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, songs, len(ids))
			for i, id := range ids {
				assert.Equal(t, id, songs[i].ID)
			}
			assert.Equal(t, songs, reload(t, path))
		})
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	repo, path := newTestRepo(t, true)
	ctx := context.Background()

	_, err := repo.Create(ctx, song(1, "A"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, song(1, "Other"))
	assert.ErrorIs(t, err, entities.ErrSongAlreadyExists)

	songs, _ := repo.List(ctx)
	assert.Equal(t, []entities.Song{song(1, "A")}, songs)
	assert.Equal(t, songs, reload(t, path))
}

func TestAbsentID_LeavesCollectionUnchanged(t *testing.T) {
	repo, _ := newTestRepo(t, true)
	ctx := context.Background()
	_, err := repo.Create(ctx, song(1, "A"))
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, entities.ErrSongNotFound)

	_, err = repo.Update(ctx, 2, song(2, "B"))
	assert.ErrorIs(t, err, entities.ErrSongNotFound)

	_, err = repo.Delete(ctx, 2)
	assert.ErrorIs(t, err, entities.ErrSongNotFound)

	songs, _ := repo.List(ctx)
	assert.Equal(t, []entities.Song{song(1, "A")}, songs)
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	repo, path := newTestRepo(t, true)
	ctx := context.Background()
	for _, id := range []int{1, 2, 3} {
		_, err := repo.Create(ctx, song(id, "old"))
		require.NoError(t, err)
	}

	updated, err := repo.Update(ctx, 2, song(2, "new"))
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)

	songs, _ := repo.List(ctx)
	assert.Equal(t, []entities.Song{song(1, "old"), song(2, "new"), song(3, "old")}, songs)
	assert.Equal(t, songs, reload(t, path))
}

func TestUpdate_DoesNotCrossCheckBodyID(t *testing.T) {
	repo, _ := newTestRepo(t, true)
	ctx := context.Background()
	_, err := repo.Create(ctx, song(1, "A"))
	require.NoError(t, err)

	_, err = repo.Update(ctx, 1, song(42, "B"))
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, entities.ErrSongNotFound)
	got, err := repo.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Title)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	repo, path := newTestRepo(t, true)
	ctx := context.Background()
	for _, id := range []int{1, 2, 3, 4} {
		_, err := repo.Create(ctx, song(id, "s"))
		require.NoError(t, err)
	}

	removed, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed.ID)

	songs, _ := repo.List(ctx)
	assert.Equal(t, 3, repo.Count())
	assert.Equal(t, []int{1, 3, 4}, []int{songs[0].ID, songs[1].ID, songs[2].ID})
	assert.Equal(t, songs, reload(t, path))
}

func TestList_ReturnsCopy(t *testing.T) {
	repo, _ := newTestRepo(t, true)
	ctx := context.Background()
	_, err := repo.Create(ctx, song(1, "A"))
	require.NoError(t, err)

	songs, _ := repo.List(ctx)
	songs[0].Title = "mutated"

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
}

func TestPersistFailure_KeepsInMemoryMutation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "songs.json")

	var observed []error
	repo, err := NewSongRepository(config.StorageConfig{Path: path}, WithObserver(func(op string, size int, err error) {
		observed = append(observed, err)
	}))
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), song(1, "A"))
	require.Error(t, err)
	assert.Equal(t, 1, repo.Count())
	require.Len(t, observed, 1)
	assert.Error(t, observed[0])
}

func TestCanceledContext(t *testing.T) {
	repo, _ := newTestRepo(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, song(1, "A"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, repo.Count())
}

func TestConcurrentCreates(t *testing.T) {
	repo, path := newTestRepo(t, true)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := repo.Create(ctx, song(id, "c"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, repo.Count())
	assert.Len(t, reload(t, path), n)
}

func TestHealthCheck(t *testing.T) {
	repo, _ := newTestRepo(t, true)
	assert.NoError(t, repo.HealthCheck())

	missing, err := NewSongRepository(config.StorageConfig{Path: filepath.Join(t.TempDir(), "nope", "songs.json")})
	require.NoError(t, err)
	assert.Error(t, missing.HealthCheck())
}

func TestEncodeCatalog_Shape(t *testing.T) {
	data, err := encodeCatalog(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"songs": []}`, string(data))

	data, err = encodeCatalog([]entities.Song{song(1, "A")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"songs":[{"id":1,"title":"A","artist":"X","genre":"Pop","peak_position":5,"weeks_on_chart":10}]}`, string(data))
}
