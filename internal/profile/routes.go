// internal/profile/routes.go

package profile

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes wires the profile endpoints under /api/v1
func RegisterRoutes(router *mux.Router, handler *Handler, authenticate func(http.Handler) http.Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authenticate)

	api.HandleFunc("/profile", handler.GetMyProfile).Methods("GET")
	api.HandleFunc("/profile", handler.UpdateProfile).Methods("PUT")
	api.HandleFunc("/profile/location", handler.UpdateLocation).Methods("PUT")
	api.HandleFunc("/users/{id}", handler.GetUserProfile).Methods("GET")
}
