package domain

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type ReviewSort string

const (
	SortByRecency    ReviewSort = "recency"
	SortByPopularity ReviewSort = "popularity"
)

type HousingQuery struct {
	Limit       int
	Offset      int
	Search      string
	MaxDistance *float64
	Price       string
}

type ReviewQuery struct {
	Limit        int
	Offset       int
	Search       string
	SortBy       ReviewSort
	WithUserData bool
}

type PostQuery struct {
	Limit        int
	Offset       int
	Search       string
	UserID       *int64
	Type         PostType
	MaxCost      *int
	WithUserData bool
}

// Page is the list envelope returned by every paginated endpoint.
type Page[T any] struct {
	Data       []T    `json:"data"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	Search     string `json:"search,omitempty"`
	TotalCount int    `json:"totalCount"`
}

// NormalizePaging clamps limit into [1, MaxLimit] and offset to >= 0.
func NormalizePaging(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
