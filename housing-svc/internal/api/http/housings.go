package httpapi

import (
	"net/http"
	"strconv"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/service"

	"github.com/gorilla/mux"
)

type createHousingRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	ImageURL  string  `json:"imageURL" validate:"omitempty,url"`
	Price     string  `json:"price" validate:"omitempty,min=1,max=4"`
	Distance  float64 `json:"distance" validate:"gte=0"`
}

func (h *Handler) createHousing(w http.ResponseWriter, r *http.Request) {
	var req createHousingRequest
	if !bind(w, r, &req) {
		return
	}
	housing := &domain.Housing{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		ImageURL:  req.ImageURL,
		Price:     req.Price,
		Distance:  req.Distance,
	}
	if err := h.Housings.Create(r.Context(), housing); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, housing)
}

func (h *Handler) listHousings(w http.ResponseWriter, r *http.Request) {
	query, ok := housingQuery(w, r)
	if !ok {
		return
	}
	page, err := h.Housings.List(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func housingQuery(w http.ResponseWriter, r *http.Request) (domain.HousingQuery, bool) {
	var query domain.HousingQuery
	var err error
	if query.Limit, err = queryInt(r, "limit", domain.DefaultLimit); err != nil {
		badRequest(w, err.Error())
		return query, false
	}
	if query.Offset, err = queryInt(r, "offset", 0); err != nil {
		badRequest(w, err.Error())
		return query, false
	}
	q := r.URL.Query()
	query.Search = q.Get("search")
	query.Price = q.Get("price")
	raw := q.Get("maxDistance")
	if raw == "" {
		raw = q.Get("distance")
	}
	if raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || d < 0 {
			badRequest(w, "maxDistance must be a non-negative number")
			return query, false
		}
		query.MaxDistance = &d
	}
	return query, true
}

func (h *Handler) getHousing(w http.ResponseWriter, r *http.Request) {
	housing, err := h.Housings.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, housing)
}

func (h *Handler) updateHousing(w http.ResponseWriter, r *http.Request) {
	var patch service.HousingPatch
	if !bind(w, r, &patch) {
		return
	}
	housing, err := h.Housings.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, housing)
}

func (h *Handler) deleteHousing(w http.ResponseWriter, r *http.Request) {
	if err := h.Housings.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getHousingQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Housings.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
