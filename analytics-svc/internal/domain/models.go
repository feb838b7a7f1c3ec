package domain

import (
	"errors"
	"time"
)

var ErrHousingNotFound = errors.New("housing not found")

// HousingAnalytics is one leaderboard row. Score is avgRating on the
// top rated board and the number of reviews created today on trending.
type HousingAnalytics struct {
	HousingID   string  `json:"housingId"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Score       float64 `json:"score"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
}

type HousingStats struct {
	HousingID   string     `json:"housingId"`
	AvgRating   float64    `json:"avgRating"`
	ReviewCount int        `json:"reviewCount"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

type Score struct {
	HousingID string
	Value     float64
}
