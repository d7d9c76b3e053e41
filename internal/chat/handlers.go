// internal/chat/handlers.go

package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Abhinav8195/teenMate-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// SendMessage handles POST /api/v1/messages
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.service.Send(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrMessageTooLong) || errors.Is(err, ErrInvalidRecipient) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error sending message")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, msg)
}

// ListMessages handles GET /api/v1/messages?user_id=
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otherID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	messages, err := h.service.ListBetween(r.Context(), userID, otherID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error getting messages")
		return
	}

	utils.RespondWithData(w, http.StatusOK, messages)
}
