package service

import (
	"context"
	"io"
	"time"

	"housing-reviews/housing-svc/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id int64, profile domain.Profile) (*domain.User, error)
	MarkEmailVerified(ctx context.Context, id int64) error
	DeleteUser(ctx context.Context, id int64) error
	// AddNotifications adds delta to the counter; a zero delta resets it.
	AddNotifications(ctx context.Context, email string, delta int) (*domain.User, error)
}

type HousingRepository interface {
	CreateHousing(ctx context.Context, housing *domain.Housing) error
	GetHousing(ctx context.Context, id string) (*domain.Housing, error)
	ListHousings(ctx context.Context, query domain.HousingQuery) ([]domain.Housing, int, error)
	UpdateHousing(ctx context.Context, housing *domain.Housing) error
	DeleteHousing(ctx context.Context, id string) error
}

// HousingCache returns (nil, nil) on a miss.
type HousingCache interface {
	GetHousing(ctx context.Context, id string) (*domain.Housing, error)
	SetHousing(ctx context.Context, housing *domain.Housing) error
	InvalidateHousing(ctx context.Context, id string) error
}

type ReviewRepository interface {
	// WithHousingLock runs fn in one transaction holding a row lock on the
	// housing. fn's error rolls back everything it wrote.
	WithHousingLock(ctx context.Context, housingID string, fn func(tx ReviewTx, housing domain.Housing) error) error
	GetReview(ctx context.Context, housingID, reviewID string) (*domain.Review, error)
	ListReviews(ctx context.Context, housingID string, query domain.ReviewQuery) ([]domain.Review, int, error)
	// UpdateLedger loads the review under a row lock, applies fn and saves
	// likedBy and upvoteCount if fn succeeds.
	UpdateLedger(ctx context.Context, housingID, reviewID string, fn func(review *domain.Review) error) (*domain.Review, error)
}

// ReviewTx is the view of the store available inside WithHousingLock.
type ReviewTx interface {
	// ListReviews returns every review of the locked housing, newest first.
	ListReviews(ctx context.Context) ([]domain.Review, error)
	GetReview(ctx context.Context, reviewID string) (*domain.Review, error)
	InsertReview(ctx context.Context, review *domain.Review) error
	DeleteReview(ctx context.Context, reviewID string) error
	SaveAggregates(ctx context.Context, result domain.ReviewMutationResult) error
}

// Summarizer turns an ordered list of review texts into one summary, or
// domain.NotEnoughInformation.
type Summarizer interface {
	Summarize(ctx context.Context, reviews []string) (string, error)
}

type ReviewPublisher interface {
	PublishReviewEvent(ctx context.Context, event domain.ReviewEvent) error
}

type PostRepository interface {
	CreatePost(ctx context.Context, post *domain.Post) error
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	ListPosts(ctx context.Context, query domain.PostQuery) ([]domain.Post, int, error)
	UpdatePost(ctx context.Context, post *domain.Post) error
	DeletePost(ctx context.Context, id string) error
}

type ImageRepository interface {
	ListImages(ctx context.Context, postID string) ([]domain.PostImage, error)
	AddImages(ctx context.Context, images []domain.PostImage) error
	SoftDeleteImages(ctx context.Context, postID string, ids []string) (int64, error)
	// ListPurgeable returns soft-deleted rows and rows orphaned by a deleted post.
	ListPurgeable(ctx context.Context) ([]domain.PostImage, error)
	HardDeleteImages(ctx context.Context, ids []string) error
}

type ObjectStore interface {
	PutObject(ctx context.Context, path string, body io.Reader, size int64, contentType string) (string, error)
	RemoveObjects(ctx context.Context, paths []string) error
}

type FavoriteRepository interface {
	AddFavoriteHousing(ctx context.Context, fav *domain.FavoriteHousing) error
	GetFavoriteHousing(ctx context.Context, userID int64, housingID string) (*domain.FavoriteHousing, error)
	RemoveFavoriteHousing(ctx context.Context, userID int64, housingID string) error
	ListFavoriteHousings(ctx context.Context, userID int64) ([]domain.Housing, error)
	AddFavoritePost(ctx context.Context, fav *domain.FavoritePost) error
	GetFavoritePost(ctx context.Context, userID int64, postID string) (*domain.FavoritePost, error)
	RemoveFavoritePost(ctx context.Context, userID int64, postID string) error
	ListFavoritePosts(ctx context.Context, userID int64) ([]domain.Post, error)
}

type Mailer interface {
	SendVerificationCode(to, firstName, code string) error
}

type UserServiceInterface interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	VerifyEmail(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (string, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, callerID, userID int64, profile domain.Profile) (*domain.User, error)
	Delete(ctx context.Context, callerID int64, email string) error
	IncrementNotifications(ctx context.Context, email string) (*domain.User, error)
	ClearNotifications(ctx context.Context, email string) (*domain.User, error)
}

type HousingServiceInterface interface {
	Create(ctx context.Context, housing *domain.Housing) error
	Get(ctx context.Context, id string) (*domain.Housing, error)
	List(ctx context.Context, query domain.HousingQuery) (*domain.Page[domain.Housing], error)
	Update(ctx context.Context, id string, patch HousingPatch) (*domain.Housing, error)
	Delete(ctx context.Context, id string) error
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, housingID string, userID int64, content string, rating float64) (*domain.Review, error)
	Delete(ctx context.Context, housingID, reviewID string, userID int64) (*domain.Review, error)
	Get(ctx context.Context, housingID, reviewID string) (*domain.Review, error)
	List(ctx context.Context, housingID string, query domain.ReviewQuery) (*domain.Page[domain.Review], error)
	Upvote(ctx context.Context, housingID, reviewID string, userID int64) (*domain.Review, error)
	UndoUpvote(ctx context.Context, housingID, reviewID string, userID int64) (*domain.Review, error)
	LikedBy(ctx context.Context, housingID, reviewID string) ([]int64, error)
}

type PostServiceInterface interface {
	Create(ctx context.Context, userID int64, post *domain.Post) error
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, query domain.PostQuery) (*domain.Page[domain.Post], error)
	Update(ctx context.Context, callerID int64, id string, patch PostPatch) (*domain.Post, error)
	Delete(ctx context.Context, callerID int64, id string) error
}

type ImageServiceInterface interface {
	List(ctx context.Context, postID string) ([]domain.PostImage, error)
	AddBatch(ctx context.Context, callerID int64, postID string, images []ImageMetadata) ([]domain.PostImage, error)
	Upload(ctx context.Context, callerID int64, postID, filename string, body io.Reader, size int64, contentType string) (*domain.PostImage, error)
	SoftDelete(ctx context.Context, callerID int64, postID string, ids []string) (int64, error)
	Purge(ctx context.Context) (int, error)
	RunPurgeSchedule(ctx context.Context, interval time.Duration)
}

type FavoriteServiceInterface interface {
	AddHousing(ctx context.Context, userID int64, housingID string) (*domain.FavoriteHousing, error)
	GetHousing(ctx context.Context, userID int64, housingID string) (*domain.FavoriteHousing, error)
	RemoveHousing(ctx context.Context, userID int64, housingID string) error
	ListHousings(ctx context.Context, userID int64) ([]domain.Housing, error)
	AddPost(ctx context.Context, userID int64, postID string) (*domain.FavoritePost, error)
	GetPost(ctx context.Context, userID int64, postID string) (*domain.FavoritePost, error)
	RemovePost(ctx context.Context, userID int64, postID string) error
	ListPosts(ctx context.Context, userID int64) ([]domain.Post, error)
}

var (
	_ UserServiceInterface     = (*UserService)(nil)
	_ HousingServiceInterface  = (*HousingService)(nil)
	_ ReviewServiceInterface   = (*ReviewService)(nil)
	_ PostServiceInterface     = (*PostService)(nil)
	_ ImageServiceInterface    = (*ImageService)(nil)
	_ FavoriteServiceInterface = (*FavoriteService)(nil)
)
