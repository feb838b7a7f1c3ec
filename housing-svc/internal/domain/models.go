package domain

import "time"

type Housing struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ImageURL        string  `json:"imageURL,omitempty"`
	Price           string  `json:"price"`
	Distance        float64 `json:"distance"`
	AvgRating       float64 `json:"avgRating"`
	ReviewCount     int     `json:"reviewCount"`
	AggregateReview *string `json:"aggregateReview"`
}

func (h Housing) Stats() RatingStats {
	return RatingStats{AvgRating: h.AvgRating, ReviewCount: h.ReviewCount}
}

type Review struct {
	ID          string      `json:"id"`
	HousingID   string      `json:"housingId"`
	UserID      int64       `json:"userId"`
	Content     string      `json:"content"`
	Rating      float64     `json:"rating"`
	Timestamp   time.Time   `json:"timestamp"`
	UpvoteCount int         `json:"upvoteCount"`
	LikedBy     []int64     `json:"likedBy"`
	User        *PublicUser `json:"user,omitempty"`
}

type User struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	PasswordHash     string `json:"-"`
	IsEmailVerified  bool   `json:"isEmailVerified"`
	VerificationCode string `json:"-"`
	Notifications    int    `json:"notifications"`
	Profile
}

// Profile holds the user-editable fields.
type Profile struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Avatar           string `json:"avatar,omitempty"`
	Bio              string `json:"bio,omitempty"`
	Age              string `json:"age,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Major            string `json:"major,omitempty"`
	GradYear         string `json:"gradYear,omitempty"`
	StayLength       string `json:"stayLength,omitempty"`
	Budget           string `json:"budget,omitempty"`
	IdealDistance    string `json:"idealDistance,omitempty"`
	PetPreference    string `json:"petPreference,omitempty"`
	Cleanliness      string `json:"cleanliness,omitempty"`
	Smoker           string `json:"smoker,omitempty"`
	SocialPreference string `json:"socialPreference,omitempty"`
	PeakProductivity string `json:"peakProductivity,omitempty"`
}

// PublicUser is what other users may see of an author.
type PublicUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Avatar: u.Avatar}
}

type PostType string

const (
	PostTypeRoommate PostType = "Roommate"
	PostTypeSublet   PostType = "Sublet"
	PostTypeHousing  PostType = "Housing"
)

func (t PostType) Valid() bool {
	switch t {
	case PostTypeRoommate, PostTypeSublet, PostTypeHousing:
		return true
	}
	return false
}

type Post struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Cost      int         `json:"cost"`
	Address   string      `json:"address"`
	Type      PostType    `json:"type"`
	UserID    int64       `json:"userId"`
	Timestamp time.Time   `json:"timestamp"`
	Images    []PostImage `json:"images,omitempty"`
	User      *PublicUser `json:"user,omitempty"`
}

type PostImage struct {
	ID        string     `json:"id"`
	PostID    *string    `json:"postId"`
	URL       string     `json:"url"`
	Path      string     `json:"path"`
	Timestamp time.Time  `json:"timestamp"`
	DeletedAt *time.Time `json:"-"`
}

type FavoriteHousing struct {
	ID        string `json:"id"`
	HousingID string `json:"housingId"`
	UserID    int64  `json:"userId"`
}

type FavoritePost struct {
	ID     string `json:"id"`
	PostID string `json:"postId"`
	UserID int64  `json:"userId"`
}
