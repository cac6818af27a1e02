package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSongsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewSongsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSongsList(t *testing.T) {
	path := writeSongsFile(t, `{"songs":[{"id":1,"title":"A","artist":"X","genre":"Pop","peak_position":5,"weeks_on_chart":10}]}`)

	out, err := run(t, "list", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Pop")
}

func TestSongsCheck(t *testing.T) {
	clean := writeSongsFile(t, `{"songs":[{"id":1},{"id":2}]}`)
	out, err := run(t, "check", "--file", clean)
	require.NoError(t, err)
	assert.Contains(t, out, "2 songs, no duplicate ids")

	dirty := writeSongsFile(t, `{"songs":[{"id":1},{"id":1}]}`)
	_, err = run(t, "check", "--file", dirty)
	assert.ErrorContains(t, err, "duplicate ids: [1]")
}

func TestSongsCheck_MissingFileIsEmpty(t *testing.T) {
	out, err := run(t, "check", "--file", filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "0 songs")
}

func TestVersion(t *testing.T) {
	cmd := NewVersionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "SongChart")
}
