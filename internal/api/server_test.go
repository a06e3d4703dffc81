package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmercado/uicguessr/internal/api"
	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/game"
	"github.com/jmercado/uicguessr/internal/models"
	"github.com/jmercado/uicguessr/internal/repository/sqlite"
	"github.com/jmercado/uicguessr/internal/services"
	"github.com/jmercado/uicguessr/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.MustClose(t, db) })

	settingsRepo := sqlite.NewSettingsRepository(db)
	profileRepo := sqlite.NewProfileRepository(db)
	achievementRepo := sqlite.NewAchievementRepository(db)
	learningRepo := sqlite.NewLearningRepository(db)

	sessions := services.NewSessionService(
		settingsRepo, profileRepo, achievementRepo, learningRepo,
		time.Hour, time.Hour,
		services.WithGameOptions(
			game.WithScheduler(game.NewManualScheduler()),
			game.WithRand(rand.New(rand.NewSource(3))),
		),
	)
	t.Cleanup(sessions.Shutdown)

	srv := &api.Server{
		Sessions: sessions,
		Settings: services.NewSettingsService(settingsRepo),
		Profile:  services.NewProfileService(sqlite.NewStatsRepository(db), learningRepo, achievementRepo),
		Campus:   services.NewCampusService(),
		DB:       db,
	}
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

type sessionPayload struct {
	ID      string    `json:"id"`
	Session game.View `json:"session"`
}

func answerKey(t *testing.T, v game.View) string {
	t.Helper()
	for _, b := range catalog.Buildings() {
		if b.Photo == v.Photo {
			return b.Key
		}
	}
	t.Fatalf("no building matches photo %q", v.Photo)
	return ""
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPlayOneRoundOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	var created sessionPayload
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sessions", map[string]any{"mode": "zen"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "awaiting_answer", created.Session.State)

	base := fmt.Sprintf("%s/api/sessions/%s", ts.URL, created.ID)

	var afterSelect sessionPayload
	resp = doJSON(t, http.MethodPost, base+"/select", map[string]string{"option": answerKey(t, created.Session)}, &afterSelect)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var afterAnswer sessionPayload
	resp = doJSON(t, http.MethodPost, base+"/answer", nil, &afterAnswer)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "correct", afterAnswer.Session.State)
	require.NotNil(t, afterAnswer.Session.LastOutcome)
	assert.True(t, afterAnswer.Session.LastOutcome.Correct)

	var revealed services.RevealResult
	resp = doJSON(t, http.MethodGet, base+"/reveal", nil, &revealed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, answerKey(t, created.Session), revealed.Building.Key)
	assert.Contains(t, revealed.MapsURL, "google.com/maps")

	var afterNext sessionPayload
	resp = doJSON(t, http.MethodPost, base+"/next", nil, &afterNext)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, afterNext.Session.Round)
}

func TestEndSessionPersistsProfile(t *testing.T) {
	ts := newTestServer(t)

	var created sessionPayload
	doJSON(t, http.MethodPost, ts.URL+"/api/sessions", map[string]any{"mode": "zen"}, &created)
	base := fmt.Sprintf("%s/api/sessions/%s", ts.URL, created.ID)

	doJSON(t, http.MethodPost, base+"/select", map[string]string{"option": answerKey(t, created.Session)}, nil)
	doJSON(t, http.MethodPost, base+"/answer", nil, nil)

	var summary models.SessionSummary
	resp := doJSON(t, http.MethodPost, base+"/end", nil, &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, summary.Rounds)

	var overview services.StatsOverview
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/stats", nil, &overview)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, overview.Stats.GamesPlayed)
	assert.Equal(t, summary.Score, overview.Stats.BestScore)

	// The finished session is gone.
	resp = doJSON(t, http.MethodGet, base, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionErrorMapping(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/does-not-exist", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var created sessionPayload
	doJSON(t, http.MethodPost, ts.URL+"/api/sessions", nil, &created)
	base := fmt.Sprintf("%s/api/sessions/%s", ts.URL, created.ID)

	// Advancing an unresolved round is a state conflict.
	resp = doJSON(t, http.MethodPost, base+"/next", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// An option outside the question is a validation error.
	resp = doJSON(t, http.MethodPost, base+"/select", map[string]string{"option": "XYZ"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/sessions", map[string]any{"difficulty": "legendary"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSettingsRoundTripOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	var settings models.Settings
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/settings", nil, &settings)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.DefaultSettings(), settings)

	settings.Difficulty = "medium"
	settings.Mode = "sprint"
	var saved models.Settings
	resp = doJSON(t, http.MethodPut, ts.URL+"/api/settings", settings, &saved)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "medium", saved.Difficulty)

	// New sessions pick up the saved defaults.
	var created sessionPayload
	doJSON(t, http.MethodPost, ts.URL+"/api/sessions", nil, &created)
	assert.Equal(t, "medium", created.Session.Difficulty)
	assert.Equal(t, "sprint", created.Session.Mode)

	// Reset restores and persists the defaults.
	var reset models.Settings
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/settings/reset", nil, &reset)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.DefaultSettings(), reset)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/settings", nil, &settings)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestMapUnlocksAchievement(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/map", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var highlighted catalog.MapModel
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/map/SCE", nil, &highlighted)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SCE", highlighted.Highlight)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/map/NOPE", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var achievements []models.Achievement
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/achievements", nil, &achievements)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := false
	for _, a := range achievements {
		if a.Key == catalog.AchievementMapLover {
			found = true
			assert.True(t, a.Unlocked)
		}
	}
	assert.True(t, found)
}

func TestNavigateOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	var result services.NavigationResult
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/navigate?from=SCE&to=LIB", nil, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, result.From)
	assert.Equal(t, "SCE", result.From.Key)
	assert.Equal(t, "LIB", result.To.Key)
	assert.Greater(t, result.Route.Meters, 0.0)
	assert.GreaterOrEqual(t, result.Route.Minutes, 1)
	assert.NotEmpty(t, result.Route.Bearing)
	assert.Contains(t, result.MapsURL, "travelmode=walking")

	// Geolocated origin instead of a building key.
	var located services.NavigationResult
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/navigate?to=LIB&lat=41.8708&lng=-87.6505", nil, &located)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, located.From)
	assert.Equal(t, "LIB", located.To.Key)
	assert.Greater(t, located.Route.Meters, 0.0)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/navigate?from=SCE", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/navigate?to=LIB&lat=abc&lng=1", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/navigate?from=SCE&to=NOPE", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var buildings []models.Building
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/buildings", nil, &buildings)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, buildings, len(catalog.Buildings()))

	var one models.Building
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/buildings/ARC", nil, &one)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ARC", one.Key)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/buildings/NOPE", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var resources []models.CampusResource
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/resources", nil, &resources)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resources)
}
