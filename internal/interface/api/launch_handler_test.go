package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"mission-control/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLaunch(t *testing.T) {
	launchRepo := &memLaunchRepo{launches: map[int]entity.Launch{}}
	planetRepo := &memPlanetRepo{planets: []string{"Kepler-62 f"}}
	handler := newTestServer(launchRepo, planetRepo)

	rec := doRequest(t, handler, http.MethodPost, "/v1/launches", map[string]string{
		"mission":    "USS Enterprise",
		"rocket":     "NCC 1701-D",
		"launchDate": "January 4, 2028",
		"target":     "Kepler-62 f",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Launch
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, 101, created.FlightNumber)
	assert.Equal(t, "USS Enterprise", created.Mission)
	assert.Equal(t, []string{"ZTM", "NASA"}, created.Customers)
	assert.True(t, created.Upcoming)
	assert.True(t, created.Success)

	want := time.Date(2028, time.January, 4, 0, 0, 0, 0, time.UTC)
	assert.True(t, created.LaunchDate.Equal(want))
}

func TestCreateLaunchMissingProperty(t *testing.T) {
	handler := newTestServer(&memLaunchRepo{launches: map[int]entity.Launch{}}, &memPlanetRepo{})

	rec := doRequest(t, handler, http.MethodPost, "/v1/launches", map[string]string{
		"mission": "USS Enterprise",
		"rocket":  "NCC 1701-D",
		"target":  "Kepler-62 f",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Missing required launch property", body["error"])
}

func TestCreateLaunchInvalidDate(t *testing.T) {
	handler := newTestServer(&memLaunchRepo{launches: map[int]entity.Launch{}}, &memPlanetRepo{planets: []string{"Kepler-62 f"}})

	rec := doRequest(t, handler, http.MethodPost, "/v1/launches", map[string]string{
		"mission":    "USS Enterprise",
		"rocket":     "NCC 1701-D",
		"launchDate": "zoot",
		"target":     "Kepler-62 f",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Invalid launch date", body["error"])
}

func TestCreateLaunchUnknownTarget(t *testing.T) {
	handler := newTestServer(&memLaunchRepo{launches: map[int]entity.Launch{}}, &memPlanetRepo{})

	rec := doRequest(t, handler, http.MethodPost, "/v1/launches", map[string]string{
		"mission":    "USS Enterprise",
		"rocket":     "NCC 1701-D",
		"launchDate": "January 4, 2028",
		"target":     "Niburu",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "No matching planet found", body["error"])
}

func TestListLaunchesPaginated(t *testing.T) {
	launchRepo := &memLaunchRepo{launches: map[int]entity.Launch{}}
	for i := 101; i <= 110; i++ {
		launchRepo.launches[i] = entity.Launch{FlightNumber: i, Upcoming: true, Success: true}
	}
	handler := newTestServer(launchRepo, &memPlanetRepo{})

	rec := doRequest(t, handler, http.MethodGet, "/v1/launches?limit=3&page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var launches []entity.Launch
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&launches))
	require.Len(t, launches, 3)
	assert.Equal(t, 104, launches[0].FlightNumber)
	assert.Equal(t, 106, launches[2].FlightNumber)
}

func TestAbortLaunch(t *testing.T) {
	launchRepo := &memLaunchRepo{launches: map[int]entity.Launch{
		101: {FlightNumber: 101, Upcoming: true, Success: true},
	}}
	handler := newTestServer(launchRepo, &memPlanetRepo{})

	rec := doRequest(t, handler, http.MethodDelete, "/v1/launches/101", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body["ok"])

	stored := launchRepo.launches[101]
	assert.False(t, stored.Upcoming)
	assert.False(t, stored.Success)
}

func TestAbortLaunchNotFound(t *testing.T) {
	handler := newTestServer(&memLaunchRepo{launches: map[int]entity.Launch{}}, &memPlanetRepo{})

	rec := doRequest(t, handler, http.MethodDelete, "/v1/launches/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAbortLaunchAlreadyAborted(t *testing.T) {
	launchRepo := &memLaunchRepo{launches: map[int]entity.Launch{
		101: {FlightNumber: 101, Upcoming: false, Success: false},
	}}
	handler := newTestServer(launchRepo, &memPlanetRepo{})

	rec := doRequest(t, handler, http.MethodDelete, "/v1/launches/101", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAbortLaunchBadID(t *testing.T) {
	handler := newTestServer(&memLaunchRepo{launches: map[int]entity.Launch{}}, &memPlanetRepo{})

	rec := doRequest(t, handler, http.MethodDelete, "/v1/launches/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPlanets(t *testing.T) {
	planetRepo := &memPlanetRepo{planets: []string{"Kepler-62 f", "Kepler-442 b"}}
	handler := newTestServer(&memLaunchRepo{launches: map[int]entity.Launch{}}, planetRepo)

	rec := doRequest(t, handler, http.MethodGet, "/v1/planets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var planets []entity.Planet
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&planets))
	require.Len(t, planets, 2)
	assert.Equal(t, "Kepler-62 f", planets[0].KeplerName)
}
