package domain

// FeedItem represents a single short-form video in the feed
type FeedItem struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Creator     string     `json:"creator" yaml:"creator"`
	AvatarColor string     `json:"avatar_color" yaml:"avatar_color"`
	Subject     string     `json:"subject" yaml:"subject"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	AIScore     int        `json:"ai_score" yaml:"ai_score"`
	VideoURL    string     `json:"video_url" yaml:"video_url"`
	Captions    string     `json:"captions,omitempty" yaml:"captions"`
}

// Difficulty represents the learning level of a feed item
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether the difficulty is one of the known levels
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ScoreBand returns the display band for an AI quality score
func ScoreBand(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "poor"
	}
}
