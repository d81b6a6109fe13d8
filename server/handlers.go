package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"MoodFM/catalog"
	"MoodFM/core/recommend"
	"MoodFM/logger"

	"github.com/gorilla/mux"
)

// APIHandler 处理所有API请求
type APIHandler struct {
	catalog     *catalog.Catalog
	recommender *recommend.Recommender
	metrics     *Metrics
}

// NewAPIHandler creates the handler set over an immutable catalog.
// metrics may be nil.
func NewAPIHandler(cat *catalog.Catalog, recommender *recommend.Recommender, metrics *Metrics) *APIHandler {
	return &APIHandler{
		catalog:     cat,
		recommender: recommender,
		metrics:     metrics,
	}
}

type indexResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// IndexHandler describes the API and its endpoints.
func (h *APIHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message: "Mood-Based Music Recommender API",
		Status:  "Running",
		Endpoints: map[string]string{
			"moods":        "/api/moods",
			"recommend":    "/api/recommend/:mood",
			"songs":        "/api/songs",
			"searchArtist": "/api/search/artist/:name",
		},
	})
}

// GetMoodsHandler lists mood names and descriptions in catalog order.
func (h *APIHandler) GetMoodsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Moods())
}

// RecommendHandler 根据心情返回随机歌单
func (h *APIHandler) RecommendHandler(w http.ResponseWriter, r *http.Request) {
	mood := pathVar(r, "mood")

	playlist, err := h.recommender.Recommend(mood)
	if err != nil {
		if errors.Is(err, recommend.ErrMoodNotFound) {
			h.metrics.observeRecommendation("", false)
			writeError(w, http.StatusNotFound, "Mood not found")
			return
		}
		logger.Error("Failed to build playlist",
			logger.String("mood", mood),
			logger.String("request_id", RequestIDFromContext(r.Context())),
			logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.metrics.observeRecommendation(playlist.Mood, true)
	logger.Debug("Playlist served",
		logger.String("mood", playlist.Mood),
		logger.Int("songCount", playlist.SongCount),
		logger.String("totalDuration", playlist.TotalDuration))

	writeJSON(w, http.StatusOK, playlist)
}

// GetSongsHandler returns the whole catalog.
func (h *APIHandler) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Songs())
}

// SearchArtistHandler 按歌手名模糊搜索（不区分大小写）
func (h *APIHandler) SearchArtistHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.SearchArtist(pathVar(r, "name")))
}

// pathVar returns a decoded path variable. The router matches on the
// encoded path so that %2F stays inside a single segment.
func pathVar(r *http.Request, key string) string {
	raw := mux.Vars(r)[key]
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
