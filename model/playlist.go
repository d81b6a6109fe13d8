package model

// Playlist is the recommendation envelope returned for a mood.
type Playlist struct {
	Mood          string `json:"mood"`
	Description   string `json:"description"`
	SongCount     int    `json:"songCount"`
	TotalDuration string `json:"totalDuration"` // "M:SS", minutes are not rolled into hours
	Songs         []Song `json:"songs"`
}
