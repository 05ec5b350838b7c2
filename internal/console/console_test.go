package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"itemctl/internal/items"
	"itemctl/internal/system"
)

// crudBackend is a minimal in-memory collection endpoint for console tests.
type crudBackend struct {
	mu    sync.Mutex
	items []items.Item
	next  int
	gets  int32
}

func newCrudBackend(seed ...items.Item) *crudBackend {
	return &crudBackend{items: seed, next: 1}
}

func (b *crudBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		id := strings.TrimPrefix(r.URL.Path, "/items")
		id = strings.TrimPrefix(id, "/")
		switch {
		case r.Method == http.MethodGet:
			atomic.AddInt32(&b.gets, 1)
			json.NewEncoder(w).Encode(b.items)
		case r.Method == http.MethodPost:
			var in items.Item
			json.NewDecoder(r.Body).Decode(&in)
			in.ID = fmt.Sprintf("srv-%d", b.next)
			b.next++
			b.items = append(b.items, in)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(in)
		case r.Method == http.MethodPut:
			for i := range b.items {
				if b.items[i].ID == id {
					var in items.Item
					json.NewDecoder(r.Body).Decode(&in)
					in.ID = id
					b.items[i] = in
					json.NewEncoder(w).Encode(in)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodDelete:
			for i := range b.items {
				if b.items[i].ID == id {
					b.items = append(b.items[:i], b.items[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestConsole(t *testing.T, h http.Handler) (*Console, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	lg := system.NewLoggerTo(io.Discard, "console-test")
	return New(items.NewClient(srv.URL+"/items", lg), lg), srv
}

func TestConsole_CreateRefetchesServerState(t *testing.T) {
	b := newCrudBackend()
	c, _ := newTestConsole(t, b.handler())
	ctx := context.Background()

	c.FormOpen = true
	c.Draft = items.Item{Name: "Widget", Description: "A widget", Category: "tools", Price: 9.99}
	if err := c.Create(ctx); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.FormOpen {
		t.Fatal("form should close on success")
	}
	if c.Draft != (items.Item{}) {
		t.Fatalf("draft should reset, got %+v", c.Draft)
	}
	// refetch invariant: local list equals server collection
	if len(c.Items) != 1 || len(b.items) != 1 || c.Items[0] != b.items[0] {
		t.Fatalf("list/server mismatch: %+v vs %+v", c.Items, b.items)
	}
	if !c.Items[0].HasID() {
		t.Fatal("created item should carry a server-assigned id")
	}
	if items.FormatPrice(c.Items[0].Price) != "$9.99" {
		t.Fatalf("price badge = %q", items.FormatPrice(c.Items[0].Price))
	}
}

func TestConsole_CreateFailureKeepsDraftAndForm(t *testing.T) {
	c, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	c.FormOpen = true
	c.Draft = items.Item{Name: "Widget", Description: "d"}
	if err := c.Create(context.Background()); err == nil {
		t.Fatal("expected failure")
	}
	if !c.FormOpen || c.Draft.Name != "Widget" {
		t.Fatalf("draft/form must survive failure: open=%v draft=%+v", c.FormOpen, c.Draft)
	}
	if !strings.Contains(c.Err, "502") {
		t.Fatalf("error banner should carry the status: %q", c.Err)
	}
	if c.Loading {
		t.Fatal("loading must be cleared on failure")
	}
}

func TestConsole_CreateInvalidDraft_NoRequest(t *testing.T) {
	var calls int32
	c, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	c.Draft = items.Item{Name: "   "}
	if err := c.Create(context.Background()); err == nil {
		t.Fatal("blank name must be rejected")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("invalid draft must not reach the network")
	}
	if c.Err == "" {
		t.Fatal("validation failure should surface in the banner")
	}
}

func TestConsole_FetchFailureClearsList(t *testing.T) {
	c, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	c.Items = []items.Item{{ID: "stale", Name: "old"}}
	if err := c.Fetch(context.Background()); err == nil {
		t.Fatal("expected failure")
	}
	if len(c.Items) != 0 {
		t.Fatalf("list must be cleared on fetch failure, got %+v", c.Items)
	}
	if !strings.Contains(c.Err, "500") {
		t.Fatalf("banner should contain the status: %q", c.Err)
	}
}

func TestConsole_FetchClearsPriorError(t *testing.T) {
	b := newCrudBackend(items.Item{ID: "a1", Name: "Widget", Description: "d"})
	c, _ := newTestConsole(t, b.handler())
	c.Err = "HTTP error! status: 500"
	if err := c.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if c.Err != "" {
		t.Fatalf("fetch must clear the prior error, got %q", c.Err)
	}
}

func TestConsole_UpdateWithoutID_SkippedEntirely(t *testing.T) {
	var calls int32
	c, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	c.Items = []items.Item{{Name: "unsaved"}}
	edit := items.Item{Name: "unsaved, renamed"}
	c.Editing = &edit
	if err := c.Update(context.Background()); err != nil {
		t.Fatalf("skip must not error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("update without id must perform zero network calls")
	}
	if len(c.Items) != 1 || c.Items[0].Name != "unsaved" {
		t.Fatalf("list must be unchanged, got %+v", c.Items)
	}
	if c.Err != "" {
		t.Fatalf("skip must not raise the banner, got %q", c.Err)
	}
}

func TestConsole_UpdateSuccessClearsEditTarget(t *testing.T) {
	b := newCrudBackend(items.Item{ID: "a1", Name: "Widget", Description: "d", Price: 1})
	c, _ := newTestConsole(t, b.handler())
	ctx := context.Background()
	if err := c.Fetch(ctx); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if !c.StartEdit(0) {
		t.Fatal("StartEdit failed")
	}
	c.Editing.Price = 2.50
	if err := c.Update(ctx); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if c.Editing != nil {
		t.Fatal("edit target must clear on success")
	}
	if c.Items[0].Price != 2.50 {
		t.Fatalf("refetched list should show the update: %+v", c.Items)
	}
}

func TestConsole_DiscardEditTouchesNothing(t *testing.T) {
	var calls int32
	c, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	c.Items = []items.Item{{ID: "a1", Name: "Widget"}}
	c.StartEdit(0)
	c.Editing.Name = "mutated freely"
	c.DiscardEdit()
	if c.Editing != nil || c.Items[0].Name != "Widget" {
		t.Fatalf("discard must not mutate the list: %+v", c.Items)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("discard must not touch the network")
	}
}

func TestConsole_DeleteFailure_NoRefetch(t *testing.T) {
	b := newCrudBackend(items.Item{ID: "a1", Name: "Widget", Description: "d"})
	c, _ := newTestConsole(t, b.handler())
	ctx := context.Background()
	if err := c.Fetch(ctx); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	getsBefore := atomic.LoadInt32(&b.gets)

	// id not present: client makes no local existence check, server 404s
	if err := c.Delete(ctx, "abc"); err == nil {
		t.Fatal("expected 404 failure")
	}
	if !strings.Contains(c.Err, "404") {
		t.Fatalf("banner should contain 404: %q", c.Err)
	}
	if len(c.Items) != 1 {
		t.Fatalf("list must be unchanged on failure: %+v", c.Items)
	}
	if atomic.LoadInt32(&b.gets) != getsBefore {
		t.Fatal("failure path must not refetch")
	}
}

func TestConsole_DeleteSuccessRefetches(t *testing.T) {
	b := newCrudBackend(items.Item{ID: "a1", Name: "Widget", Description: "d"})
	c, _ := newTestConsole(t, b.handler())
	ctx := context.Background()
	if err := c.Delete(ctx, "a1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(c.Items) != 0 {
		t.Fatalf("refetched list should be empty: %+v", c.Items)
	}
}

func TestConsole_DismissError(t *testing.T) {
	c := New(items.NewClient("http://127.0.0.1:0", system.NewLoggerTo(io.Discard, "t")), system.NewLoggerTo(io.Discard, "t"))
	c.Err = "HTTP error! status: 500"
	c.DismissError()
	if c.Err != "" {
		t.Fatal("dismiss must clear the banner")
	}
}
