package openai_provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestChatSendsWireRequest(t *testing.T) {
	t.Parallel()
	var gotPath, gotAuth string
	var gotReq request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hello there"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("test-key", "gpt-4o-mini", srv.URL, 5*time.Second)
	got, err := c.Chat(context.Background(), "be brief", "say hello", 0.1, 0)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got != "hello there" {
		t.Fatalf("Chat() got %q", got)
	}
	if gotPath != "/v1/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" || gotReq.Temperature != 0.1 {
		t.Fatalf("request = %+v", gotReq)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "say hello" {
		t.Fatalf("messages = %+v", gotReq.Messages)
	}
}

func TestChatOmitsMaxTokensWhenUnset(t *testing.T) {
	t.Parallel()
	var rawBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rawBody = string(b)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("k", "m", srv.URL, 5*time.Second)
	if _, err := c.Chat(context.Background(), "", "q", 0.7, 0); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if strings.Contains(rawBody, "max_tokens") {
		t.Fatalf("expected max_tokens omitted, body = %s", rawBody)
	}
	if _, err := c.Chat(context.Background(), "", "q", 0.7, 512); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if !strings.Contains(rawBody, `"max_tokens":512`) {
		t.Fatalf("expected max_tokens set, body = %s", rawBody)
	}
}

func TestChatSurfacesAPIErrorMessage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid token"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("secret-key", "m", srv.URL, 5*time.Second)
	_, err := c.Chat(context.Background(), "", "q", 0.1, 0)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid token") || !strings.Contains(err.Error(), "401") {
		t.Fatalf("error = %v", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("error leaks credential: %v", err)
	}
}

func TestChatEmptyChoices(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("k", "m", srv.URL, 5*time.Second)
	if _, err := c.Chat(context.Background(), "", "q", 0.1, 0); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
