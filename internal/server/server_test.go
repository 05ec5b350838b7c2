package server

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"itemctl/internal/items"
	"itemctl/internal/system"
)

func newTestServer(t *testing.T, seed ...items.Item) *httptest.Server {
	t.Helper()
	st := NewStore()
	st.Seed(seed...)
	s := &Server{Path: "/items", Store: st, Log: system.NewLoggerTo(io.Discard, "server-test")}
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_CRUDRoundtrip(t *testing.T) {
	srv := newTestServer(t)
	lg := system.NewLoggerTo(io.Discard, "client-test")
	c := items.NewClient(srv.URL+"/items", lg)
	ctx := context.Background()

	// empty list is an array, not an error
	list, err := c.List(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("initial list: %v %v", list, err)
	}

	created, err := c.Create(ctx, items.Item{Name: "Widget", Description: "A widget", Category: "tools", Price: 9.99})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !created.HasID() {
		t.Fatalf("server must assign an id: %+v", created)
	}

	created.Price = 12
	updated, err := c.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Price != 12 || updated.ID != created.ID {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	list, err = c.List(ctx)
	if err != nil || len(list) != 1 || list[0].Price != 12 {
		t.Fatalf("list after update: %+v %v", list, err)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	list, _ = c.List(ctx)
	if len(list) != 0 {
		t.Fatalf("list after delete: %+v", list)
	}
}

func TestServer_RejectsInvalidPayloads(t *testing.T) {
	srv := newTestServer(t)
	lg := system.NewLoggerTo(io.Discard, "client-test")
	c := items.NewClient(srv.URL+"/items", lg)
	ctx := context.Background()

	if _, err := c.Create(ctx, items.Item{Name: "   ", Description: "d"}); err == nil {
		t.Fatal("blank name must be rejected with 400")
	}
	if _, err := c.Create(ctx, items.Item{Name: "x", Price: -2}); err == nil {
		t.Fatal("negative price must be rejected with 400")
	}
}

func TestServer_NotFound(t *testing.T) {
	srv := newTestServer(t)
	lg := system.NewLoggerTo(io.Discard, "client-test")
	c := items.NewClient(srv.URL+"/items", lg)
	ctx := context.Background()

	if err := c.Delete(ctx, "missing"); err == nil {
		t.Fatal("delete of unknown id must 404")
	}
	if _, err := c.Update(ctx, items.Item{ID: "missing", Name: "x", Description: "d"}); err == nil {
		t.Fatal("update of unknown id must 404")
	}
}

func TestStore_OrderPreserved(t *testing.T) {
	st := NewStore()
	a := st.Create(items.Item{Name: "a", Description: "d"})
	b := st.Create(items.Item{Name: "b", Description: "d"})
	c := st.Create(items.Item{Name: "c", Description: "d"})
	if a.ID == b.ID || b.ID == c.ID {
		t.Fatal("ids must be unique")
	}
	st.Delete(b.ID)
	got := st.List()
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Fatalf("order not preserved: %+v", got)
	}
}
