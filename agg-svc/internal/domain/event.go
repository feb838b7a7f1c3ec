package domain

import "time"

const (
	EventReviewCreated = "review_created"
	EventReviewDeleted = "review_deleted"
)

// ReviewEvent is published by housing-svc after a review mutation commits.
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

func (e ReviewEvent) Known() bool {
	return e.Type == EventReviewCreated || e.Type == EventReviewDeleted
}
