package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) listFavoriteHousings(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())
	housings, err := h.Favorites.ListHousings(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, housings)
}

func (h *Handler) addFavoriteHousing(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())
	fav, err := h.Favorites.AddHousing(r.Context(), userID, mux.Vars(r)["housingId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (h *Handler) getFavoriteHousing(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())
	fav, err := h.Favorites.GetHousing(r.Context(), userID, mux.Vars(r)["housingId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

func (h *Handler) removeFavoriteHousing(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())
	if err := h.Favorites.RemoveHousing(r.Context(), userID, mux.Vars(r)["housingId"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFavoritePosts(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())
	posts, err := h.Favorites.ListPosts(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) addFavoritePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())
	fav, err := h.Favorites.AddPost(r.Context(), userID, mux.Vars(r)["postId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (h *Handler) getFavoritePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())
	fav, err := h.Favorites.GetPost(r.Context(), userID, mux.Vars(r)["postId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

func (h *Handler) removeFavoritePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFrom(r.Context())
	if err := h.Favorites.RemovePost(r.Context(), userID, mux.Vars(r)["postId"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
