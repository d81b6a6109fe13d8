package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MoodFM/catalog"
	"MoodFM/config"
	"MoodFM/core/recommend"
	"MoodFM/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "127.0.0.1:0",
		MetricsEnabled:  true,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(testConfig(), catalog.Default(), recommend.NoShuffle())
}

func doRequest(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestIndexHandler(t *testing.T) {
	rec := doRequest(t, newTestServer(t).Handler(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decode[indexResponse](t, rec)
	assert.Equal(t, "Mood-Based Music Recommender API", body.Message)
	assert.Equal(t, "Running", body.Status)
	assert.Equal(t, map[string]string{
		"moods":        "/api/moods",
		"recommend":    "/api/recommend/:mood",
		"songs":        "/api/songs",
		"searchArtist": "/api/search/artist/:name",
	}, body.Endpoints)
}

func TestGetMoodsHandler(t *testing.T) {
	rec := doRequest(t, newTestServer(t).Handler(), http.MethodGet, "/api/moods")
	require.Equal(t, http.StatusOK, rec.Code)

	moods := decode[[]model.MoodSummary](t, rec)
	require.Len(t, moods, 4)
	assert.Equal(t, model.MoodSummary{Name: "Happy", Description: "Uplifting songs to boost your mood"}, moods[0])
	assert.Equal(t, "Sad", moods[1].Name)
	assert.Equal(t, "Calm", moods[2].Name)
	assert.Equal(t, "Energetic", moods[3].Name)

	// keywords stay internal
	assert.NotContains(t, rec.Body.String(), "keywords")
}

func TestGetSongsHandler(t *testing.T) {
	rec := doRequest(t, newTestServer(t).Handler(), http.MethodGet, "/api/songs")
	require.Equal(t, http.StatusOK, rec.Code)

	songs := decode[[]model.Song](t, rec)
	require.Len(t, songs, 20)
	for i, s := range songs {
		assert.Equal(t, i+1, s.ID)
	}
	assert.Equal(t, model.Song{
		ID: 11, Title: "Weightless", Artist: "Marconi Union", Mood: "Calm",
		Genre: "Ambient", Tempo: "slow", Duration: "8:10",
	}, songs[10])
}

func TestRecommendHandler(t *testing.T) {
	h := newTestServer(t).Handler()

	for _, mood := range []string{"Happy", "Sad", "Calm", "Energetic"} {
		t.Run(mood, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodGet, "/api/recommend/"+mood)
			require.Equal(t, http.StatusOK, rec.Code)

			p := decode[model.Playlist](t, rec)
			assert.Equal(t, mood, p.Mood)
			assert.NotEmpty(t, p.Description)
			assert.Equal(t, 5, p.SongCount)
			require.Len(t, p.Songs, 5)

			sum := 0
			for _, s := range p.Songs {
				assert.Equal(t, mood, s.Mood)
				secs, err := model.ParseDuration(s.Duration)
				require.NoError(t, err)
				sum += secs
			}
			total, err := model.ParseDuration(p.TotalDuration)
			require.NoError(t, err)
			assert.Equal(t, sum, total)
		})
	}
}

func TestRecommendHandler_ResponseShape(t *testing.T) {
	rec := doRequest(t, newTestServer(t).Handler(), http.MethodGet, "/api/recommend/Sad")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Len(t, raw, 5)
	for _, key := range []string{"mood", "description", "songCount", "totalDuration", "songs"} {
		assert.Contains(t, raw, key)
	}
	// 4:45 + 3:28 + 4:54 + 3:38 + 5:06
	assert.JSONEq(t, `"21:51"`, string(raw["totalDuration"]))
}

func TestRecommendHandler_UnknownMood(t *testing.T) {
	h := newTestServer(t).Handler()

	for _, target := range []string{"/api/recommend/UnknownMood", "/api/recommend/happy", "/api/recommend/Happy%20"} {
		rec := doRequest(t, h, http.MethodGet, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.JSONEq(t, `{"error":"Mood not found"}`, rec.Body.String(), target)
	}
}

func TestSearchArtistHandler(t *testing.T) {
	h := newTestServer(t).Handler()

	lower := doRequest(t, h, http.MethodGet, "/api/search/artist/queen")
	require.Equal(t, http.StatusOK, lower.Code)
	songs := decode[[]model.Song](t, lower)
	require.Len(t, songs, 1)
	assert.Equal(t, 4, songs[0].ID)
	assert.Equal(t, "Don't Stop Me Now", songs[0].Title)

	upper := doRequest(t, h, http.MethodGet, "/api/search/artist/QUEEN")
	require.Equal(t, http.StatusOK, upper.Code)
	assert.Equal(t, lower.Body.String(), upper.Body.String())
}

func TestSearchArtistHandler_EncodedAndEmpty(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doRequest(t, h, http.MethodGet, "/api/search/artist/the%20beach")
	require.Equal(t, http.StatusOK, rec.Code)
	songs := decode[[]model.Song](t, rec)
	require.Len(t, songs, 1)
	assert.Equal(t, 3, songs[0].ID)

	rec = doRequest(t, h, http.MethodGet, "/api/search/artist/caf%C3%A9")
	require.Equal(t, http.StatusOK, rec.Code)
	songs = decode[[]model.Song](t, rec)
	require.Len(t, songs, 1)
	assert.Equal(t, 15, songs[0].ID)

	for _, target := range []string{"/api/search/artist/nobody", "/api/search/artist/AC%2FDC"} {
		rec = doRequest(t, h, http.MethodGet, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()), target)
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doRequest(t, h, http.MethodGet, "/api/nothing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())

	rec = doRequest(t, h, http.MethodGet, "/api/recommend/")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/songs")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestCustomCatalog(t *testing.T) {
	cat, err := catalog.New(
		[]model.MoodCategory{{Name: "Focus", Description: "Deep work"}},
		[]model.Song{{ID: 1, Title: "t", Artist: "a", Mood: "Focus", Duration: "1:05"}},
	)
	require.NoError(t, err)
	h := New(testConfig(), cat, recommend.NoShuffle()).Handler()

	rec := doRequest(t, h, http.MethodGet, "/api/recommend/Focus")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[model.Playlist](t, rec)
	assert.Equal(t, "1:05", p.TotalDuration)

	rec = doRequest(t, h, http.MethodGet, "/api/recommend/Happy")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()

	doRequest(t, h, http.MethodGet, "/api/recommend/Calm")
	doRequest(t, h, http.MethodGet, "/api/recommend/Nope")

	rec := doRequest(t, h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `moodfm_recommendations_total{mood="Calm",result="ok"} 1`)
	assert.Contains(t, text, `moodfm_recommendations_total{mood="unknown",result="not_found"} 1`)
	assert.Contains(t, text, `moodfm_http_requests_total{method="GET",route="/api/recommend/{mood}",status_code="200"} 1`)
	assert.Contains(t, text, `moodfm_http_requests_total{method="GET",route="/api/recommend/{mood}",status_code="404"} 1`)
	assert.NotContains(t, text, `route="/metrics"`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	h := New(cfg, catalog.Default(), nil).Handler()

	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodGet, "/metrics").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, h, http.MethodGet, "/api/recommend/Happy").Code)
}
