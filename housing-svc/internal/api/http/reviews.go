package httpapi

import (
	"net/http"
	"strconv"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/logger"

	"github.com/gorilla/mux"
)

type createReviewRequest struct {
	Content string   `json:"content" validate:"required"`
	Rating  *float64 `json:"rating"`
}

type likedByResponse struct {
	LikedBy []int64 `json:"likedBy"`
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if !bind(w, r, &req) {
		return
	}
	// absent rating counts as 0, like a clamped negative one
	var rating float64
	if req.Rating != nil {
		rating = *req.Rating
	}
	userID, _ := userIDFrom(r.Context())
	review, err := h.Reviews.Create(r.Context(), mux.Vars(r)["housingId"], userID, req.Content, rating)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	var query domain.ReviewQuery
	var err error
	if query.Limit, err = queryInt(r, "limit", domain.DefaultLimit); err != nil {
		badRequest(w, err.Error())
		return
	}
	if query.Offset, err = queryInt(r, "offset", 0); err != nil {
		badRequest(w, err.Error())
		return
	}
	query.Search = r.URL.Query().Get("search")
	query.WithUserData = queryBool(r, "withUserData")
	switch sort := domain.ReviewSort(r.URL.Query().Get("sortBy")); sort {
	case "", domain.SortByRecency, domain.SortByPopularity:
		query.SortBy = sort
	default:
		badRequest(w, "sortBy must be one of recency, popularity")
		return
	}

	page, err := h.Reviews.List(r.Context(), mux.Vars(r)["housingId"], query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	review, err := h.Reviews.Get(r.Context(), vars["housingId"], vars["reviewId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, _ := userIDFrom(r.Context())
	review, err := h.Reviews.Delete(r.Context(), vars["housingId"], vars["reviewId"], userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) upvoteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.voter(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	review, err := h.Reviews.Upvote(r.Context(), vars["housingId"], vars["reviewId"], userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) undoUpvoteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.voter(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	review, err := h.Reviews.UndoUpvote(r.Context(), vars["housingId"], vars["reviewId"], userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// voter returns the path user id, which must be the authenticated caller.
func (h *Handler) voter(w http.ResponseWriter, r *http.Request) (int64, bool) {
	pathID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		badRequest(w, "invalid user id")
		return 0, false
	}
	callerID, _ := userIDFrom(r.Context())
	if pathID != callerID {
		logger.Warn(logger.EventAccessDenied, "vote on behalf of another user", logger.Fields(
			"caller_id", callerID, "path_user_id", pathID))
		writeError(w, r, domain.ErrForbidden)
		return 0, false
	}
	return pathID, true
}

func (h *Handler) getLikedBy(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	likedBy, err := h.Reviews.LikedBy(r.Context(), vars["housingId"], vars["reviewId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, likedByResponse{LikedBy: likedBy})
}
