package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticFetch_ReturnsBodyAndContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	s := &Static{}
	body, ct, err := s.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "<html><body>ok</body></html>" {
		t.Fatalf("unexpected body %q", body)
	}
	if ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestStaticFetch_ErrorStatusStillReturnsBody(t *testing.T) {
	// Error pages carry HTML worth processing, so 4xx and 5xx responses
	// must not be turned into errors.
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(status)
			_, _ = w.Write([]byte("<html><body>error page</body></html>"))
		}))

		s := &Static{}
		body, _, err := s.Fetch(context.Background(), srv.URL)
		srv.Close()
		if err != nil {
			t.Fatalf("status %d: expected no error, got %v", status, err)
		}
		if string(body) != "<html><body>error page</body></html>" {
			t.Fatalf("status %d: expected error page body, got %q", status, body)
		}
	}
}

func TestStaticFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := &Static{}
	if _, _, err := s.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected a transport error against a closed server")
	}
}

func TestStaticFetch_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/target", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/target", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("landed"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := &Static{}
	body, _, err := s.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "landed" {
		t.Fatalf("expected redirect to be followed, got %q", body)
	}
}

func TestStaticFetch_HonorsContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Static{}
	if _, _, err := s.Fetch(ctx, srv.URL); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
