// internal/chat/routes.go

package chat

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes wires the messaging endpoints under /api/v1
func RegisterRoutes(router *mux.Router, handler *Handler, authenticate func(http.Handler) http.Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authenticate)

	api.HandleFunc("/messages", handler.SendMessage).Methods("POST")
	api.HandleFunc("/messages", handler.ListMessages).Methods("GET")
}
