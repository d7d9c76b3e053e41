// internal/match/handlers.go

package match

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Abhinav8195/teenMate-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// DiscoverCandidates handles GET /api/v1/discover
func (h *Handler) DiscoverCandidates(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profiles, err := h.service.DiscoverCandidates(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, profiles)
}

// DiscoverNearby handles GET /api/v1/discover/nearby?lat=&lon=&radius_km=
func (h *Handler) DiscoverNearby(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := r.URL.Query()
	if q.Get("lat") == "" || q.Get("lon") == "" || q.Get("radius_km") == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "lat, lon and radius_km are required")
		return
	}

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "lon must be a number")
		return
	}
	radiusKm, err := strconv.ParseFloat(q.Get("radius_km"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "radius_km must be a number")
		return
	}

	profiles, err := h.service.DiscoverNearby(r.Context(), userID, lat, lon, radiusKm)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, profiles)
}

// Like handles POST /api/v1/matches/like
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Like(r.Context(), userID, req.TargetID, req.Image, req.Comment); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Profile liked successfully")
}

// CreateMatch handles POST /api/v1/matches
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.CreateMatch(r.Context(), userID, req.UserID); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Match created successfully")
}

// DeleteLike handles DELETE /api/v1/matches/like/{targetId}
func (h *Handler) DeleteLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, err := strconv.ParseInt(mux.Vars(r)["targetId"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid target id")
		return
	}

	if err := h.service.DeleteLike(r.Context(), userID, targetID); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Like deleted successfully")
}

// GetMatches handles GET /api/v1/matches
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matches, err := h.service.GetMatches(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, matches)
}

// GetReceivedLikes handles GET /api/v1/matches/likes/received
func (h *Handler) GetReceivedLikes(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	likes, err := h.service.GetReceivedLikes(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, likes)
}

// currentUserID reads the authenticated user id placed in the request
// context by the auth middleware.
func currentUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value("userID").(int64)
	return userID, ok
}

// respondServiceError maps engine error kinds to HTTP status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidArgument):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		utils.RespondWithError(w, http.StatusBadGateway, "Profile store unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
