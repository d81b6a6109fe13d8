package model

// MoodCategory describes a mood songs can be tagged with.
// Keywords are descriptive only, nothing matches against them.
type MoodCategory struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Description string   `json:"description" yaml:"description" validate:"required"`
}

// MoodSummary 是 /api/moods 返回的精简结构
type MoodSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Summary projects the category onto its listing form.
func (c MoodCategory) Summary() MoodSummary {
	return MoodSummary{Name: c.Name, Description: c.Description}
}
