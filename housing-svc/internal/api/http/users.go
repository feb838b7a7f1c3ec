package httpapi

import (
	"net/http"
	"strconv"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/service"

	"github.com/gorilla/mux"
)

type verifyEmailRequest struct {
	Email            string `json:"email" validate:"required,email"`
	VerificationCode string `json:"verificationCode" validate:"required,len=6,numeric"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type updateProfileRequest struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Avatar           string `json:"avatar" validate:"omitempty,url"`
	Bio              string `json:"bio" validate:"max=500"`
	Age              string `json:"age"`
	Gender           string `json:"gender"`
	Major            string `json:"major"`
	GradYear         string `json:"gradYear"`
	StayLength       string `json:"stayLength"`
	Budget           string `json:"budget"`
	IdealDistance    string `json:"idealDistance"`
	PetPreference    string `json:"petPreference"`
	Cleanliness      string `json:"cleanliness"`
	Smoker           string `json:"smoker"`
	SocialPreference string `json:"socialPreference"`
	PeakProductivity string `json:"peakProductivity"`
}

func (req updateProfileRequest) profile() domain.Profile {
	return domain.Profile{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Avatar:           req.Avatar,
		Bio:              req.Bio,
		Age:              req.Age,
		Gender:           req.Gender,
		Major:            req.Major,
		GradYear:         req.GradYear,
		StayLength:       req.StayLength,
		Budget:           req.Budget,
		IdealDistance:    req.IdealDistance,
		PetPreference:    req.PetPreference,
		Cleanliness:      req.Cleanliness,
		Smoker:           req.Smoker,
		SocialPreference: req.SocialPreference,
		PeakProductivity: req.PeakProductivity,
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !bind(w, r, &input) {
		return
	}
	user, err := h.Users.Register(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if !bind(w, r, &req) {
		return
	}
	if err := h.Users.VerifyEmail(r.Context(), req.Email, req.VerificationCode); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "email verified"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !bind(w, r, &req) {
		return
	}
	token, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.GetByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		badRequest(w, "invalid user id")
		return
	}
	var req updateProfileRequest
	if !bind(w, r, &req) {
		return
	}
	callerID, _ := userIDFrom(r.Context())
	user, err := h.Users.UpdateProfile(r.Context(), callerID, userID, req.profile())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := userIDFrom(r.Context())
	if err := h.Users.Delete(r.Context(), callerID, mux.Vars(r)["email"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) incrementNotifications(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.IncrementNotifications(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) clearNotifications(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.ClearNotifications(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
