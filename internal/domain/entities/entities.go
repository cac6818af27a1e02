package entities

import (
	"errors"
)

// Common errors
var (
	ErrSongNotFound      = errors.New("song not found")
	ErrSongAlreadyExists = errors.New("song with this ID already exists")
	ErrInvalidSong       = errors.New("invalid song")
)

// Song represents a single chart record
type Song struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Genre        string `json:"genre"`
	PeakPosition int    `json:"peak_position"`
	WeeksOnChart int    `json:"weeks_on_chart"`
}

// Catalog is the on-disk shape of the backing file
type Catalog struct {
	Songs []Song `json:"songs"`
}

// FindIndex returns the position of the first song with the given ID, or -1
func FindIndex(songs []Song, id int) int {
	for i := range songs {
		if songs[i].ID == id {
			return i
		}
	}
	return -1
}

// DuplicateIDs reports every ID that appears more than once, in first-seen order
func (c *Catalog) DuplicateIDs() []int {
	seen := make(map[int]int, len(c.Songs))
	var dups []int
	for _, s := range c.Songs {
		seen[s.ID]++
		if seen[s.ID] == 2 {
			dups = append(dups, s.ID)
		}
	}
	return dups
}

