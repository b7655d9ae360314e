package feed

import "github.com/umputun/eduflow/pkg/domain"

const sampleVideoBase = "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/"

// SampleItems returns the built-in feed used when no items are configured
func SampleItems() []domain.FeedItem {
	return []domain.FeedItem{
		{
			ID:          "v1",
			Title:       "Newton's Laws in 60 seconds",
			Creator:     "Dr. Maya Patel",
			AvatarColor: "#7c3aed",
			Subject:     "Physics",
			Difficulty:  domain.DifficultyBeginner,
			AIScore:     86,
			VideoURL:    sampleVideoBase + "BigBuckBunny.mp4",
		},
		{
			ID:          "v2",
			Title:       "Spanish: 5 phrases for travel",
			Creator:     "Ana Torres",
			AvatarColor: "#06b6d4",
			Subject:     "Languages",
			Difficulty:  domain.DifficultyBeginner,
			AIScore:     78,
			VideoURL:    sampleVideoBase + "ElephantsDream.mp4",
		},
		{
			ID:          "v3",
			Title:       "Binary Search explained",
			Creator:     "Alex Chen",
			AvatarColor: "#22c55e",
			Subject:     "Computer Science",
			Difficulty:  domain.DifficultyIntermediate,
			AIScore:     91,
			VideoURL:    sampleVideoBase + "ForBiggerBlazes.mp4",
		},
	}
}
