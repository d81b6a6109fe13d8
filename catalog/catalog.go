// Package catalog holds the immutable song catalog the API serves from.
package catalog

import (
	"fmt"
	"strings"

	"MoodFM/model"
)

// Catalog is an ordered, read-only set of mood categories and songs.
// It is safe for concurrent use; every accessor hands out copies.
type Catalog struct {
	moods  []model.MoodCategory
	songs  []model.Song
	byName map[string]int
}

// New validates moods and songs and builds a Catalog from copies of them.
func New(moods []model.MoodCategory, songs []model.Song) (*Catalog, error) {
	if err := validate(moods, songs); err != nil {
		return nil, err
	}

	c := &Catalog{
		moods:  make([]model.MoodCategory, len(moods)),
		songs:  make([]model.Song, len(songs)),
		byName: make(map[string]int, len(moods)),
	}
	for i, m := range moods {
		m.Keywords = append([]string(nil), m.Keywords...)
		c.moods[i] = m
		c.byName[m.Name] = i
	}
	copy(c.songs, songs)
	return c, nil
}

// Moods lists every mood category as name and description, in declaration order.
func (c *Catalog) Moods() []model.MoodSummary {
	out := make([]model.MoodSummary, len(c.moods))
	for i, m := range c.moods {
		out[i] = m.Summary()
	}
	return out
}

// Categories returns the full mood categories, keywords included.
func (c *Catalog) Categories() []model.MoodCategory {
	out := make([]model.MoodCategory, len(c.moods))
	for i, m := range c.moods {
		m.Keywords = append([]string(nil), m.Keywords...)
		out[i] = m
	}
	return out
}

// Mood looks a category up by its exact, case-sensitive name.
func (c *Catalog) Mood(name string) (model.MoodCategory, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.MoodCategory{}, false
	}
	m := c.moods[i]
	m.Keywords = append([]string(nil), m.Keywords...)
	return m, true
}

// Songs returns all songs in declaration order.
func (c *Catalog) Songs() []model.Song {
	out := make([]model.Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// SongsByMood returns the songs tagged with exactly mood, in declaration order.
func (c *Catalog) SongsByMood(mood string) []model.Song {
	out := make([]model.Song, 0)
	for _, s := range c.songs {
		if s.Mood == mood {
			out = append(out, s)
		}
	}
	return out
}

// SearchArtist returns songs whose artist contains query, ignoring case.
// No match yields an empty, non-nil slice.
func (c *Catalog) SearchArtist(query string) []model.Song {
	q := strings.ToLower(query)
	out := make([]model.Song, 0)
	for _, s := range c.songs {
		if strings.Contains(strings.ToLower(s.Artist), q) {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// String 用于日志输出
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(%d moods, %d songs)", len(c.moods), len(c.songs))
}
