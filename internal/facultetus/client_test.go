package facultetus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_GetSpheres(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/secret-1/getlib") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("lib") != "spheres" {
			t.Errorf("expected lib=spheres, got %q", r.URL.Query().Get("lib"))
		}
		_, _ = w.Write([]byte(`{"spheres": ["IT", "Finance"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "client-1", "secret-1", nil)
	spheres, err := c.GetSpheres(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(spheres) != 2 || spheres[0] != "IT" {
		t.Fatalf("unexpected spheres: %v", spheres)
	}
}

func TestClient_GetPositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/client-1/getPositions") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("university_id") != "508" || q.Get("offset") != "20" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"response": [{"position_id": 101, "title": "Go dev", "employer_id": "7"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "client-1", "secret-1", nil)
	page, err := c.GetPositions(context.Background(), "508", 20)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("expected 1 record, got %d", len(page))
	}
	if page[0].PositionID != "101" {
		t.Fatalf("unexpected position id %q", page[0].PositionID)
	}
	if !page[0].EmployerID.Valid || page[0].EmployerID.Int64 != 7 {
		t.Fatalf("unexpected employer id %+v", page[0].EmployerID)
	}
}

func TestClient_GetPositions_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "client-1", "secret-1", nil)
	page, err := c.GetPositions(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %d records", len(page))
	}
}

func TestClient_GetActivities_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("university_id") != "508" || q.Get("offset") != "40" || q.Get("limit") != "80" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"response": [{"id": "A-1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "client-1", "secret-1", nil)
	page, err := c.GetActivities(context.Background(), "508", 40, 80)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page) != 1 || page[0].ID != "A-1" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "client-1", "secret-1", nil)
	if _, err := c.GetUniversities(context.Background(), 0); err == nil {
		t.Fatalf("expected error for non-2xx status")
	} else if !strings.Contains(err.Error(), "status=502") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": [`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "client-1", "secret-1", nil)
	if _, err := c.GetUniversities(context.Background(), 0); err == nil {
		t.Fatalf("expected decode error")
	}
}
