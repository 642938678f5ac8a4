package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func chatStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["model"] == "" {
			t.Error("request missing model")
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(ts *httptest.Server) *Client {
	return &Client{APIKey: "test-key", BaseURL: ts.URL, Model: "test-model", HTTPClient: ts.Client()}
}

func TestChatReturnsAssistantContent(t *testing.T) {
	t.Parallel()

	ts := chatStub(t, "hello there")
	defer ts.Close()

	got, err := testClient(ts).Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 100, nil)
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "hello there" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestChatRequiresAPIKey(t *testing.T) {
	t.Parallel()

	c := &Client{}
	if _, err := c.Chat(context.Background(), nil, 10, nil); err == nil {
		t.Fatal("expected missing-key error")
	}
}

func TestChatSurfacesHTTPErrors(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	if _, err := testClient(ts).Chat(context.Background(), nil, 10, nil); err == nil {
		t.Fatal("expected status error")
	}
}

func TestChatRejectsEmptyChoices(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer ts.Close()

	if _, err := testClient(ts).Chat(context.Background(), nil, 10, nil); err == nil {
		t.Fatal("expected empty-choices error")
	}
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"object in prose", "Sure! Here you go: {\"a\":1} hope that helps", `{"a":1}`},
		{"fenced object", "```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"array", "the plan: [1,2,3] done", "[1,2,3]"},
	}
	for _, c := range cases {
		got, err := ExtractJSON(c.in)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, got, c.want)
		}
	}

	if _, err := ExtractJSON("no payload here"); err == nil {
		t.Fatal("expected error when no JSON present")
	}
}
