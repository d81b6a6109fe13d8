package model

// Mood names used by the built-in catalog.
const (
	MoodHappy     = "Happy"
	MoodSad       = "Sad"
	MoodCalm      = "Calm"
	MoodEnergetic = "Energetic"
)

// Song represents one entry of the music catalog.
type Song struct {
	ID       int    `json:"id" yaml:"id" validate:"gt=0"`
	Title    string `json:"title" yaml:"title" validate:"required"`
	Artist   string `json:"artist" yaml:"artist" validate:"required"`
	Mood     string `json:"mood" yaml:"mood" validate:"required"`
	Genre    string `json:"genre" yaml:"genre"`
	Tempo    string `json:"tempo" yaml:"tempo"`                           // upbeat, slow, moderate, fast
	Duration string `json:"duration" yaml:"duration" validate:"duration"` // "M:SS"
}
