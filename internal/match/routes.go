// internal/match/routes.go

package match

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes wires the discovery and relationship endpoints under /api/v1
func RegisterRoutes(router *mux.Router, handler *Handler, authenticate func(http.Handler) http.Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authenticate)

	// Discovery
	api.HandleFunc("/discover", handler.DiscoverCandidates).Methods("GET")
	api.HandleFunc("/discover/nearby", handler.DiscoverNearby).Methods("GET")

	// Matches & likes
	api.HandleFunc("/matches", handler.GetMatches).Methods("GET")
	api.HandleFunc("/matches", handler.CreateMatch).Methods("POST")
	api.HandleFunc("/matches/like", handler.Like).Methods("POST")
	api.HandleFunc("/matches/like/{targetId}", handler.DeleteLike).Methods("DELETE")
	api.HandleFunc("/matches/likes/received", handler.GetReceivedLikes).Methods("GET")
}
