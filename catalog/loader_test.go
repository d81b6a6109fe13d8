package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
moods:
  - name: Focus
    keywords: [focus, study]
    description: Songs for deep work
  - name: Party
    description: Turn it up
songs:
  - id: 7
    title: Deep Work
    artist: The Concentrators
    mood: Focus
    genre: Ambient
    tempo: slow
    duration: "6:40"
  - id: 9
    title: Loud
    artist: DJ Volume
    mood: Party
    genre: EDM
    tempo: fast
    duration: "3:05"
`

const jsonCatalog = `{
  "moods": [{"name": "Focus", "keywords": ["focus"], "description": "Songs for deep work"}],
  "songs": [{"id": 1, "title": "Deep Work", "artist": "The Concentrators", "mood": "Focus", "genre": "Ambient", "tempo": "slow", "duration": "6:40"}]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	c, err := LoadFile(writeFile(t, "catalog.yaml", yamlCatalog))
	require.NoError(t, err)

	moods := c.Moods()
	require.Len(t, moods, 2)
	assert.Equal(t, "Focus", moods[0].Name)
	assert.Equal(t, "Party", moods[1].Name)

	focus, ok := c.Mood("Focus")
	require.True(t, ok)
	assert.Equal(t, []string{"focus", "study"}, focus.Keywords)

	songs := c.Songs()
	require.Len(t, songs, 2)
	assert.Equal(t, 7, songs[0].ID)
	assert.Equal(t, "6:40", songs[0].Duration)
}

func TestLoadFile_JSON(t *testing.T) {
	c, err := LoadFile(writeFile(t, "catalog.json", jsonCatalog))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "The Concentrators", c.Songs()[0].Artist)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading catalog file")

	_, err = LoadFile(writeFile(t, "broken.yaml", "moods: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing catalog")

	invalid := writeFile(t, "invalid.yaml", `
moods:
  - name: Focus
    description: d
songs:
  - {id: 1, title: t, artist: a, mood: Party, duration: "1:00"}
`)
	_, err = LoadFile(invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), invalid)
}

func TestLoad_EmptyPathUsesBuiltin(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, c.Len())

	c, err = Load(writeFile(t, "catalog.json", jsonCatalog))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}
