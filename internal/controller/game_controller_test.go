package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bulls_cows_backend/internal/model"
	"bulls_cows_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type memGameStore struct {
	games map[string]*model.Game
}

func (s *memGameStore) Create(game *model.Game) error {
	if game.ID == "" {
		game.ID = fmt.Sprintf("game-%d", len(s.games)+1)
	}
	s.games[game.ID] = game
	return nil
}

func (s *memGameStore) FindByID(id string) (*model.Game, error) {
	game, ok := s.games[id]
	if !ok {
		return nil, nil
	}
	found := *game
	return &found, nil
}

func (s *memGameStore) Update(id string, fields map[string]interface{}) error {
	game, ok := s.games[id]
	if !ok {
		return nil
	}
	if won, ok := fields["won"]; ok {
		game.Won = won.(bool)
	}
	if score, ok := fields["score"]; ok {
		game.Score = score.(int)
	}
	return nil
}

func (s *memGameStore) Delete(id string) error {
	delete(s.games, id)
	return nil
}

type memAttemptCache struct {
	entries map[string][]model.Attempt
}

func (c *memAttemptCache) Get(ctx context.Context, gameID string) ([]model.Attempt, error) {
	stored, ok := c.entries[gameID]
	if !ok {
		return nil, nil
	}
	return append([]model.Attempt(nil), stored...), nil
}

func (c *memAttemptCache) Put(ctx context.Context, gameID string, attempts []model.Attempt, ttl time.Duration) error {
	c.entries[gameID] = append([]model.Attempt(nil), attempts...)
	return nil
}

func (c *memAttemptCache) Delete(ctx context.Context, gameID string) error {
	delete(c.entries, gameID)
	return nil
}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

var testBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(budget int) (*gin.Engine, *memGameStore, *stubClock) {
	gin.SetMode(gin.TestMode)

	store := &memGameStore{games: map[string]*model.Game{}}
	cache := &memAttemptCache{entries: map[string][]model.Attempt{}}
	clock := &stubClock{now: testBase}
	svc := service.NewGameService(store, cache, clock, budget)

	c := NewGameController(svc)
	router := gin.New()
	game := router.Group("/api/v1/game")
	{
		game.POST("/create", c.CreateGame)
		game.POST("/propose_combination", c.ProposeCombination)
		game.GET("/previous_combination", c.PreviousCombination)
		game.DELETE("/delete", c.DeleteGame)
	}
	return router, store, clock
}

func seedGame(store *memGameStore, id, secret string) {
	game := &model.Game{Username: "pepe23", Age: 23, Combination: secret}
	game.ID = id
	game.CreatedAt = testBase
	store.games[id] = game
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response body is not a JSON envelope: %v (%s)", err, w.Body.String())
	}
	return w, resp
}

func TestCreateGameEndpoint(t *testing.T) {
	router, store, _ := newTestServer(300)

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/game/create",
		`{"username":"pepe23","age":23}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}

	var data struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil || data.ID == "" {
		t.Fatalf("expected a game id in data, got %s", resp.Data)
	}
	if _, ok := store.games[data.ID]; !ok {
		t.Error("returned id does not match a persisted game")
	}
}

func TestCreateGameEndpointValidation(t *testing.T) {
	router, _, _ := newTestServer(300)

	tests := []struct {
		name string
		body string
	}{
		{"missing username", `{"age":23}`},
		{"missing age", `{"username":"pepe23"}`},
		{"username not alphanumeric", `{"username":"pepe 23!","age":23}`},
		{"username too long", fmt.Sprintf(`{"username":%q,"age":23}`, strings.Repeat("a", 51))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doRequest(t, router, http.MethodPost, "/api/v1/game/create", tt.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", w.Code)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
		})
	}
}

func TestProposeCombinationEndpoint(t *testing.T) {
	router, store, _ := newTestServer(300)
	seedGame(store, "g1", "1234")

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination",
		`{"game":"g1","combination":"4321"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var attempt model.Attempt
	if err := json.Unmarshal(resp.Data, &attempt); err != nil {
		t.Fatalf("data is not an attempt: %v", err)
	}
	if attempt.Bulls != 0 || attempt.Cows != 4 {
		t.Errorf("bulls/cows = %d/%d, want 0/4", attempt.Bulls, attempt.Cows)
	}
	if attempt.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempt.Attempts)
	}
}

func TestProposeCombinationEndpointValidation(t *testing.T) {
	router, _, _ := newTestServer(300)

	tests := []struct {
		name string
		body string
	}{
		{"missing game", `{"combination":"1234"}`},
		{"missing combination", `{"game":"g1"}`},
		{"combination too short", `{"game":"g1","combination":"123"}`},
		{"combination not numeric", `{"game":"g1","combination":"12a4"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination", tt.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", w.Code)
			}
		})
	}
}

func TestProposeCombinationEndpointNotFound(t *testing.T) {
	router, _, _ := newTestServer(300)

	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination",
		`{"game":"missing","combination":"1234"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestProposeCombinationEndpointDuplicate(t *testing.T) {
	router, store, _ := newTestServer(300)
	seedGame(store, "g1", "1234")

	body := `{"game":"g1","combination":"5678"}`
	if w, _ := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination", body); w.Code != http.StatusOK {
		t.Fatalf("first proposal status = %d, want 200", w.Code)
	}

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination", body)
	if w.Code != http.StatusAlreadyReported {
		t.Errorf("status = %d, want 208", w.Code)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
}

func TestProposeCombinationEndpointExpired(t *testing.T) {
	router, store, clock := newTestServer(300)
	seedGame(store, "g1", "1234")
	clock.now = testBase.Add(400 * time.Second)

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination",
		`{"game":"g1","combination":"5678"}`)

	if w.Code != http.StatusGone {
		t.Fatalf("status = %d, want 410", w.Code)
	}

	var data struct {
		Combination string `json:"combination"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("data is not the revealed secret: %v", err)
	}
	if data.Combination != "1234" {
		t.Errorf("revealed combination = %q, want %q", data.Combination, "1234")
	}
}

func TestPreviousCombinationEndpoint(t *testing.T) {
	router, store, _ := newTestServer(300)
	seedGame(store, "g1", "1234")

	if w, _ := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination",
		`{"game":"g1","combination":"5678"}`); w.Code != http.StatusOK {
		t.Fatal("seeding proposal failed")
	}
	if w, _ := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination",
		`{"game":"g1","combination":"8765"}`); w.Code != http.StatusOK {
		t.Fatal("seeding proposal failed")
	}

	w, resp := doRequest(t, router, http.MethodGet, "/api/v1/game/previous_combination?game=g1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var latest model.Attempt
	if err := json.Unmarshal(resp.Data, &latest); err != nil {
		t.Fatalf("data is not an attempt: %v", err)
	}
	if latest.Combination != "8765" {
		t.Errorf("latest combination = %q, want %q", latest.Combination, "8765")
	}

	w, resp = doRequest(t, router, http.MethodGet, "/api/v1/game/previous_combination?game=g1&attempt=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var first model.Attempt
	if err := json.Unmarshal(resp.Data, &first); err != nil {
		t.Fatalf("data is not an attempt: %v", err)
	}
	if first.Combination != "5678" {
		t.Errorf("attempt 2 combination = %q, want the first recorded %q", first.Combination, "5678")
	}
}

func TestPreviousCombinationEndpointNotFound(t *testing.T) {
	router, store, _ := newTestServer(300)
	seedGame(store, "g1", "1234")

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/game/previous_combination?game=g1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when no attempt was made yet", w.Code)
	}

	if w, _ := doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination",
		`{"game":"g1","combination":"5678"}`); w.Code != http.StatusOK {
		t.Fatal("seeding proposal failed")
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/game/previous_combination?game=g1&attempt=9", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an attempt number with no entry", w.Code)
	}
}

func TestPreviousCombinationEndpointValidation(t *testing.T) {
	router, _, _ := newTestServer(300)

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/game/previous_combination?game=g1&attempt=1", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 for attempt below 2", w.Code)
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/game/previous_combination", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 without a game id", w.Code)
	}
}

func TestDeleteGameEndpoint(t *testing.T) {
	router, store, _ := newTestServer(300)
	seedGame(store, "g1", "1234")

	w, resp := doRequest(t, router, http.MethodDelete, "/api/v1/game/delete", `{"id":"g1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}

	w, _ = doRequest(t, router, http.MethodDelete, "/api/v1/game/delete", `{"id":"g1"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}

	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/game/propose_combination",
		`{"game":"g1","combination":"1234"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("propose after delete status = %d, want 404", w.Code)
	}
}
