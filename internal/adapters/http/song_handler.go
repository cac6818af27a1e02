package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/songchart/api/internal/infrastructure/logger"
	"github.com/songchart/api/internal/ports"
)

// SongHandler handles song-related requests
type SongHandler struct {
	songService ports.SongService
	logger      *logger.Logger
}

// NewSongHandler creates a new song handler
func NewSongHandler(songService ports.SongService, logger *logger.Logger) *SongHandler {
	return &SongHandler{
		songService: songService,
		logger:      logger.WithComponent("song_handler"),
	}
}

// Register mounts the song routes on g
func (h *SongHandler) Register(g *echo.Group) {
	g.GET("/songs", h.ListSongs)
	g.POST("/songs", h.CreateSong)
	g.GET("/songs/:id", h.GetSong)
	g.PUT("/songs/:id", h.UpdateSong)
	g.DELETE("/songs/:id", h.DeleteSong)
}

// ListSongs godoc
// @Summary List songs
// @Description Return every song in insertion order
// @Tags songs
// @Produce json
// @Success 200 {array} entities.Song
// @Router /songs [get]
func (h *SongHandler) ListSongs(c echo.Context) error {
	songs, err := h.songService.ListSongs(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, songs)
}

// GetSong godoc
// @Summary Get song by ID
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} entities.Song
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /songs/{id} [get]
func (h *SongHandler) GetSong(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	song, err := h.songService.GetSong(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, song)
}

// CreateSong godoc
// @Summary Create a song
// @Description Append a song with a caller-assigned ID
// @Tags songs
// @Accept json
// @Produce json
// @Param request body ports.SongRequest true "Song data"
// @Success 200 {object} entities.Song
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /songs [post]
func (h *SongHandler) CreateSong(c echo.Context) error {
	req, err := h.bindSong(c)
	if err != nil {
		return err
	}

	song, err := h.songService.CreateSong(c.Request().Context(), req)
	if err != nil {
		h.logger.Debugw("Create song rejected", "error", err)
		return domainError(err)
	}

	return c.JSON(http.StatusOK, song)
}

// UpdateSong godoc
// @Summary Replace a song
// @Description Replace the song stored under the path ID. The body ID is stored as sent.
// @Tags songs
// @Accept json
// @Produce json
// @Param id path int true "Song ID"
// @Param request body ports.SongRequest true "Song data"
// @Success 200 {object} entities.Song
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /songs/{id} [put]
func (h *SongHandler) UpdateSong(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	req, err := h.bindSong(c)
	if err != nil {
		return err
	}

	song, err := h.songService.UpdateSong(c.Request().Context(), id, req)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, song)
}

// DeleteSong godoc
// @Summary Delete a song
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} entities.Song
// @Failure 404 {object} ErrorResponse
// @Router /songs/{id} [delete]
func (h *SongHandler) DeleteSong(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	song, err := h.songService.DeleteSong(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, song)
}

func (h *SongHandler) bindSong(c echo.Context) (ports.SongRequest, error) {
	var req ports.SongRequest
	if err := c.Bind(&req); err != nil {
		return req, bindError(err)
	}

	if err := c.Validate(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return req, ValidationErrorFrom(verrs)
		}
		return req, err
	}

	return req, nil
}
