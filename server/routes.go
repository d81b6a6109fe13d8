package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes and middleware. metrics may be nil, in
// which case /metrics is not served.
func NewRouter(h *APIHandler, metrics *Metrics) http.Handler {
	// 匹配编码后的路径，歌手名里的 %2F 不会被拆成两段
	router := mux.NewRouter().UseEncodedPath()
	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	router.HandleFunc("/", h.IndexHandler).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/api/moods", h.GetMoodsHandler).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/api/recommend/{mood}", h.RecommendHandler).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/api/songs", h.GetSongsHandler).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/api/search/artist/{name}", h.SearchArtistHandler).Methods(http.MethodGet, http.MethodHead)

	if metrics != nil {
		router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
		router.Use(metrics.Middleware)
	}

	return requestIDMiddleware(accessLogMiddleware(corsMiddleware(router)))
}
