package httpapi

import (
	"net/http"
	"strconv"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxUploadSize = 10 << 20

type createPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Cost    int    `json:"cost" validate:"gte=0"`
	Address string `json:"address" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=Roommate Sublet Housing"`
}

type addImagesRequest struct {
	Images []service.ImageMetadata `json:"images" validate:"required,min=1,dive"`
}

type deleteImagesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !bind(w, r, &req) {
		return
	}
	post := &domain.Post{
		Title:   req.Title,
		Content: req.Content,
		Cost:    req.Cost,
		Address: req.Address,
		Type:    domain.PostType(req.Type),
	}
	userID, _ := userIDFrom(r.Context())
	if err := h.Posts.Create(r.Context(), userID, post); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	var query domain.PostQuery
	var err error
	if query.Limit, err = queryInt(r, "limit", domain.DefaultLimit); err != nil {
		badRequest(w, err.Error())
		return
	}
	if query.Offset, err = queryInt(r, "offset", 0); err != nil {
		badRequest(w, err.Error())
		return
	}
	q := r.URL.Query()
	query.Search = q.Get("search")
	query.Type = domain.PostType(q.Get("type"))
	query.WithUserData = queryBool(r, "withUserData")
	if raw := q.Get("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(w, "userId must be an integer")
			return
		}
		query.UserID = &id
	}
	if raw := q.Get("cost"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil || cost < 0 {
			badRequest(w, "cost must be a non-negative integer")
			return
		}
		query.MaxCost = &cost
	}

	page, err := h.Posts.List(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Posts.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	var patch service.PostPatch
	if !bind(w, r, &patch) {
		return
	}
	callerID, _ := userIDFrom(r.Context())
	post, err := h.Posts.Update(r.Context(), callerID, mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	callerID, _ := userIDFrom(r.Context())
	if err := h.Posts.Delete(r.Context(), callerID, mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPostImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.Images.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *Handler) addPostImages(w http.ResponseWriter, r *http.Request) {
	var req addImagesRequest
	if !bind(w, r, &req) {
		return
	}
	callerID, _ := userIDFrom(r.Context())
	images, err := h.Images.AddBatch(r.Context(), callerID, mux.Vars(r)["id"], req.Images)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, images)
}

func (h *Handler) uploadPostImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		badRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		badRequest(w, "image file is required")
		return
	}
	defer file.Close()

	callerID, _ := userIDFrom(r.Context())
	image, err := h.Images.Upload(r.Context(), callerID, mux.Vars(r)["id"], header.Filename, file,
		header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

func (h *Handler) deletePostImages(w http.ResponseWriter, r *http.Request) {
	var req deleteImagesRequest
	if !bind(w, r, &req) {
		return
	}
	callerID, _ := userIDFrom(r.Context())
	deleted, err := h.Images.SoftDelete(r.Context(), callerID, mux.Vars(r)["id"], req.IDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
}
