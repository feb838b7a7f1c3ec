package httpapi

import (
	"net/http"
	"time"

	"housing-reviews/housing-svc/internal/service"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

type Handler struct {
	Users     service.UserServiceInterface
	Housings  service.HousingServiceInterface
	Reviews   service.ReviewServiceInterface
	Posts     service.PostServiceInterface
	Images    service.ImageServiceInterface
	Favorites service.FavoriteServiceInterface
	Tokens    TokenParser
	Limiter   *RateLimiter
}

func NewHandler(
	users service.UserServiceInterface,
	housings service.HousingServiceInterface,
	reviews service.ReviewServiceInterface,
	posts service.PostServiceInterface,
	images service.ImageServiceInterface,
	favorites service.FavoriteServiceInterface,
	tokens TokenParser,
) *Handler {
	return &Handler{
		Users:     users,
		Housings:  housings,
		Reviews:   reviews,
		Posts:     posts,
		Images:    images,
		Favorites: favorites,
		Tokens:    tokens,
		Limiter:   NewRateLimiter(rate.Every(time.Second), 10),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users/register", h.Limiter.Wrap(h.register)).Methods("POST")
	api.HandleFunc("/users/verify", h.Limiter.Wrap(h.verifyEmail)).Methods("POST")
	api.HandleFunc("/users/login", h.Limiter.Wrap(h.login)).Methods("POST")
	api.HandleFunc("/users", h.authed(h.listUsers)).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}", h.authed(h.updateUser)).Methods("PATCH")
	api.HandleFunc("/users/{email}", h.getUser).Methods("GET")
	api.HandleFunc("/users/{email}", h.authed(h.deleteUser)).Methods("DELETE")
	api.HandleFunc("/users/{email}/notifications", h.authed(h.incrementNotifications)).Methods("PATCH")
	api.HandleFunc("/users/{email}/clearNotifs", h.authed(h.clearNotifications)).Methods("PATCH")

	api.HandleFunc("/housings", h.authed(h.createHousing)).Methods("POST")
	api.HandleFunc("/housings", h.listHousings).Methods("GET")
	api.HandleFunc("/housings/{id}", h.getHousing).Methods("GET")
	api.HandleFunc("/housings/{id}", h.authed(h.updateHousing)).Methods("PATCH")
	api.HandleFunc("/housings/{id}", h.authed(h.deleteHousing)).Methods("DELETE")
	api.HandleFunc("/housings/{id}/qrcode", h.getHousingQRCode).Methods("GET")

	api.HandleFunc("/housings/{housingId}/reviews", h.authed(h.createReview)).Methods("POST")
	api.HandleFunc("/housings/{housingId}/reviews", h.listReviews).Methods("GET")
	api.HandleFunc("/housings/{housingId}/reviews/{reviewId}", h.getReview).Methods("GET")
	api.HandleFunc("/housings/{housingId}/reviews/{reviewId}", h.authed(h.deleteReview)).Methods("DELETE")
	api.HandleFunc("/housings/{housingId}/reviews/{reviewId}/upvote/{userId:[0-9]+}", h.authed(h.upvoteReview)).Methods("PATCH")
	api.HandleFunc("/housings/{housingId}/reviews/{reviewId}/upvoteUndo/{userId:[0-9]+}", h.authed(h.undoUpvoteReview)).Methods("PATCH")
	api.HandleFunc("/housings/{housingId}/reviews/{reviewId}/likedBy", h.getLikedBy).Methods("GET")

	api.HandleFunc("/posts", h.authed(h.createPost)).Methods("POST")
	api.HandleFunc("/posts", h.listPosts).Methods("GET")
	api.HandleFunc("/posts/{id}", h.getPost).Methods("GET")
	api.HandleFunc("/posts/{id}", h.authed(h.updatePost)).Methods("PATCH")
	api.HandleFunc("/posts/{id}", h.authed(h.deletePost)).Methods("DELETE")
	api.HandleFunc("/posts/{id}/images", h.listPostImages).Methods("GET")
	api.HandleFunc("/posts/{id}/images", h.authed(h.addPostImages)).Methods("POST")
	api.HandleFunc("/posts/{id}/images/upload", h.authed(h.uploadPostImage)).Methods("POST")
	api.HandleFunc("/posts/{id}/images", h.authed(h.deletePostImages)).Methods("DELETE")

	api.HandleFunc("/favorites/housings", h.authed(h.listFavoriteHousings)).Methods("GET")
	api.HandleFunc("/favorites/housings/{housingId}", h.authed(h.addFavoriteHousing)).Methods("POST")
	api.HandleFunc("/favorites/housings/{housingId}", h.authed(h.getFavoriteHousing)).Methods("GET")
	api.HandleFunc("/favorites/housings/{housingId}", h.authed(h.removeFavoriteHousing)).Methods("DELETE")
	api.HandleFunc("/favorites/posts", h.authed(h.listFavoritePosts)).Methods("GET")
	api.HandleFunc("/favorites/posts/{postId}", h.authed(h.addFavoritePost)).Methods("POST")
	api.HandleFunc("/favorites/posts/{postId}", h.authed(h.getFavoritePost)).Methods("GET")
	api.HandleFunc("/favorites/posts/{postId}", h.authed(h.removeFavoritePost)).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "housing-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
