package brave

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seekerhq/seeker/internal/httpx"
)

func TestSearchParsesWebResults(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Subscription-Token"); got != "bk" {
			t.Errorf("token header = %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "latest go version" {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("count"); got != "5" {
			t.Errorf("count = %q", got)
		}
		w.Write([]byte(`{"web":{"results":[
			{"title":"Go","url":"https://go.dev","description":"the go website"}
		]}}`))
	}))
	defer srv.Close()

	s := New("bk", srv.URL, httpx.New(5*time.Second, 0, time.Millisecond))
	results, err := s.Search(context.Background(), "latest go version", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Snippet != "the go website" || results[0].Rank != 0 {
		t.Fatalf("results = %+v", results)
	}
}
