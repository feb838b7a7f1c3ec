package domain

import "time"

const (
	EventReviewCreated = "review_created"
	EventReviewDeleted = "review_deleted"
)

// ReviewEvent carries the listing stats as committed by the mutation.
type ReviewEvent struct {
	Type        string    `json:"type"`
	HousingID   string    `json:"housing_id"`
	ReviewID    string    `json:"review_id"`
	UserID      int64     `json:"user_id"`
	Rating      float64   `json:"rating"`
	AvgRating   float64   `json:"avg_rating"`
	ReviewCount int       `json:"review_count"`
	Timestamp   time.Time `json:"timestamp"`
}
