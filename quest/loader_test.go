package quest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func validQuest(id string) *Quest {
	return &Quest{
		ID:   id,
		Name: "The Request Lifecycle",
		Layers: []Layer{
			{Type: LayerBrowser, Order: 0, Challenge: &Challenge{Kind: ChallengeQuiz}},
			{Type: LayerNetwork, Order: 1, Challenge: &Challenge{
				Kind:   ChallengePlatformer,
				Config: map[string]any{"obstacles": 5, "theme": "tcp"},
			}},
		},
	}
}

// TestLoadCaches tests a second load for the same id skips the fetcher
func TestLoadCaches(t *testing.T) {
	calls := 0
	loader := NewLoader(FetcherFunc(func(ctx context.Context, id string) (*Quest, error) {
		calls++
		return validQuest(id), nil
	}))

	q1, err := loader.Load(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	q2, err := loader.Load(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("Unexpected error on cached load: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 fetch, got %d", calls)
	}
	if q1 != q2 {
		t.Errorf("Expected cached load to return the same quest instance")
	}
	if !loader.IsCached("q-1") {
		t.Errorf("Expected q-1 to be cached")
	}
	if loader.IsCached("q-2") {
		t.Errorf("Did not expect q-2 to be cached")
	}
}

// TestLoadEmptyLayers tests an empty layer list fails with InvalidQuest
// and never returns a partially built quest
func TestLoadEmptyLayers(t *testing.T) {
	loader := NewLoader(FetcherFunc(func(ctx context.Context, id string) (*Quest, error) {
		return &Quest{ID: id, Name: "Empty"}, nil
	}))

	q, err := loader.Load(context.Background(), "q-empty")
	if q != nil {
		t.Errorf("Expected nil quest on validation failure, got %+v", q)
	}
	var invalid *InvalidQuestError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidQuestError, got %v", err)
	}
	if loader.IsCached("q-empty") {
		t.Errorf("Invalid quest must not be cached")
	}
}

// TestLoadValidation tests each structural defect is rejected
func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name  string
		quest *Quest
	}{
		{"missing id", &Quest{Name: "X", Layers: []Layer{{Type: LayerAPI, Challenge: &Challenge{Kind: "quiz"}}}}},
		{"missing name", &Quest{ID: "q", Layers: []Layer{{Type: LayerAPI, Challenge: &Challenge{Kind: "quiz"}}}}},
		{"missing layer type", &Quest{ID: "q", Name: "X", Layers: []Layer{{Challenge: &Challenge{Kind: "quiz"}}}}},
		{"unknown layer type", &Quest{ID: "q", Name: "X", Layers: []Layer{{Type: "CLOUD", Challenge: &Challenge{Kind: "quiz"}}}}},
		{"missing challenge", &Quest{ID: "q", Name: "X", Layers: []Layer{{Type: LayerAPI}}}},
		{"empty challenge kind", &Quest{ID: "q", Name: "X", Layers: []Layer{{Type: LayerAPI, Challenge: &Challenge{}}}}},
	}
	for _, tc := range cases {
		err := Validate(tc.quest)
		var invalid *InvalidQuestError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: expected InvalidQuestError, got %v", tc.name, err)
		}
	}

	if err := Validate(validQuest("ok")); err != nil {
		t.Errorf("Valid quest rejected: %v", err)
	}
}

// TestLoadFetchFailure tests transport failure surfaces as LoadFailedError
// carrying the quest id
func TestLoadFetchFailure(t *testing.T) {
	loader := NewLoader(FetcherFunc(func(ctx context.Context, id string) (*Quest, error) {
		return nil, fmt.Errorf("connection refused")
	}))

	_, err := loader.Load(context.Background(), "q-down")
	var failed *LoadFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("Expected LoadFailedError, got %v", err)
	}
	if failed.QuestID != "q-down" {
		t.Errorf("Expected quest id q-down in error, got %q", failed.QuestID)
	}
}

// TestClearCache tests the cache can be dropped for a forced refresh
func TestClearCache(t *testing.T) {
	calls := 0
	loader := NewLoader(FetcherFunc(func(ctx context.Context, id string) (*Quest, error) {
		calls++
		return validQuest(id), nil
	}))

	loader.Load(context.Background(), "q-1")
	loader.ClearCache()
	if loader.IsCached("q-1") {
		t.Errorf("Expected cache to be empty after ClearCache")
	}
	loader.Load(context.Background(), "q-1")
	if calls != 2 {
		t.Errorf("Expected refetch after ClearCache, got %d calls", calls)
	}
}

// TestHTTPFetcher tests the envelope contract over a live test server
func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/quests/q-1":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"success":true,"data":{"id":"q-1","name":"Web Basics","layers":[{"type":"NETWORK","order":0,"challenge":{"type":"platformer","config":{"theme":"tcp"}}}]}}`)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"success":false,"error":{"code":"NOT_FOUND","message":"no such quest"}}`)
		}
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.URL)
	loader := NewLoader(fetcher)

	q, err := loader.Load(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.ID != "q-1" || q.Name != "Web Basics" || len(q.Layers) != 1 {
		t.Errorf("Quest mismatch: %+v", q)
	}
	if q.Layers[0].Type != LayerNetwork {
		t.Errorf("Expected NETWORK layer, got %q", q.Layers[0].Type)
	}
	if theme, _ := q.Layers[0].Challenge.Config["theme"].(string); theme != "tcp" {
		t.Errorf("Expected challenge theme tcp, got %v", q.Layers[0].Challenge.Config["theme"])
	}

	_, err = loader.Load(context.Background(), "q-missing")
	var failed *LoadFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("Expected LoadFailedError for not-found, got %v", err)
	}
	if failed.QuestID != "q-missing" {
		t.Errorf("Expected quest id in error, got %q", failed.QuestID)
	}
}
