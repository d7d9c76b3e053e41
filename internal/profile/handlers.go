// internal/profile/handlers.go

package profile

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

// GetMyProfile handles GET /api/v1/profile
func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		respondProfileError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, profile)
}

// GetUserProfile handles GET /api/v1/users/{id}
func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		respondProfileError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		respondProfileError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, profile)
}

// UpdateLocation handles PUT /api/v1/profile/location
func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	changed, err := h.service.UpdateLocation(r.Context(), userID, *req.Latitude, *req.Longitude)
	if err != nil {
		respondProfileError(w, err)
		return
	}

	if changed {
		utils.RespondWithMessage(w, http.StatusOK, "Location updated successfully")
	} else {
		utils.RespondWithMessage(w, http.StatusOK, "Location is already up-to-date")
	}
}

func respondProfileError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrProfileNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
