// Package recommend builds mood playlists from the catalog.
package recommend

import (
	"errors"
	"fmt"

	"MoodFM/catalog"
	"MoodFM/model"
)

// MaxPlaylistSize caps the number of songs in a recommendation.
const MaxPlaylistSize = 8

// ErrMoodNotFound is returned when the requested mood is not in the catalog.
var ErrMoodNotFound = errors.New("mood not found")

// Recommender picks a shuffled selection of songs for a mood.
type Recommender struct {
	catalog  *catalog.Catalog
	shuffler Shuffler
	limit    int
}

// NewRecommender creates a Recommender over cat. A nil shuffler falls back
// to NewRandShuffler.
func NewRecommender(cat *catalog.Catalog, shuffler Shuffler) *Recommender {
	if shuffler == nil {
		shuffler = NewRandShuffler()
	}
	return &Recommender{
		catalog:  cat,
		shuffler: shuffler,
		limit:    MaxPlaylistSize,
	}
}

// Recommend returns a playlist of at most MaxPlaylistSize songs tagged with
// mood. The mood name is matched case-sensitively.
func (r *Recommender) Recommend(mood string) (*model.Playlist, error) {
	category, ok := r.catalog.Mood(mood)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMoodNotFound, mood)
	}

	songs := r.catalog.SongsByMood(mood)
	r.shuffler.Shuffle(len(songs), func(i, j int) {
		songs[i], songs[j] = songs[j], songs[i]
	})
	if len(songs) > r.limit {
		songs = songs[:r.limit]
	}

	total, err := model.TotalDuration(songs)
	if err != nil {
		return nil, fmt.Errorf("failed to sum playlist duration for %s: %w", mood, err)
	}

	return &model.Playlist{
		Mood:          category.Name,
		Description:   category.Description,
		SongCount:     len(songs),
		TotalDuration: model.FormatDuration(total),
		Songs:         songs,
	}, nil
}
