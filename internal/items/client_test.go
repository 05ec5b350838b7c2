package items

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"itemctl/internal/system"
)

func testLogger() *system.Logger { return system.NewLoggerTo(io.Discard, "test") }

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"a1","name":"Widget","description":"A widget","category":"tools","price":9.99}]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/items", testLogger())
	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a1" || got[0].Name != "Widget" || got[0].Price != 9.99 {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestClient_List_NonArrayBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"oops":"not an array"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("non-array body must not error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestClient_List_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	_, err := c.List(context.Background())
	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if herr.StatusCode != 500 {
		t.Fatalf("status = %d, want 500", herr.StatusCode)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("message should carry the status: %q", err.Error())
	}
	if err.Error() != "HTTP error! status: 500" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestClient_Create_StripsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		var in Item
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		if in.ID != "" {
			t.Errorf("id must be stripped from create payload, got %q", in.ID)
		}
		in.ID = "srv-1"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	created, err := c.Create(context.Background(), Item{ID: "client-set", Name: "Widget", Description: "A widget"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != "srv-1" {
		t.Fatalf("expected server-assigned id, got %+v", created)
	}
}

func TestClient_Update_MissingID_NoRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	_, err := c.Update(context.Background(), Item{Name: "no id yet"})
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("expected zero network calls, got %d", n)
	}
}

func TestClient_Update_PutsAtID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/items/a1") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var in Item
		json.NewDecoder(r.Body).Decode(&in)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/items", testLogger())
	got, err := c.Update(context.Background(), Item{ID: "a1", Name: "Widget v2", Description: "d"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Widget v2" {
		t.Fatalf("unexpected updated item: %+v", got)
	}
}

func TestClient_Delete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	err := c.Delete(context.Background(), "abc")
	var herr *HTTPError
	if !errors.As(err, &herr) || herr.StatusCode != 404 {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestItem_Validate(t *testing.T) {
	if err := (Item{Name: "ok", Description: "d"}).Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}
	if err := (Item{Name: "   ", Description: "d"}).Validate(); err == nil {
		t.Fatal("whitespace name must be rejected")
	}
	if err := (Item{Name: "x", Price: -1}).Validate(); err == nil {
		t.Fatal("negative price must be rejected")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(9.99); got != "$9.99" {
		t.Fatalf("FormatPrice(9.99) = %q", got)
	}
	if got := FormatPrice(0); got != "$0.00" {
		t.Fatalf("FormatPrice(0) = %q", got)
	}
}
