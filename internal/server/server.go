// Package server is a small development backend implementing the items wire
// protocol: GET/POST on the collection path, PUT/DELETE on {path}/{id},
// JSON bodies throughout. It exists so the console is usable without an
// external service.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"itemctl/internal/items"
	"itemctl/internal/system"
	appver "itemctl/internal/version"
)

// Server hosts the collection endpoint on Addr under Path.
type Server struct {
	Addr  string
	Path  string
	Store *Store
	Log   *system.Logger
}

// Router builds the gin engine with the collection routes mounted.
func (s *Server) Router() *gin.Engine {
	if s.Store == nil {
		s.Store = NewStore()
	}
	if s.Log == nil {
		s.Log = system.NewLogger("server")
	}
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})

	path := s.Path
	if path == "" {
		path = "/items"
	}
	r.GET(path, s.listItems)
	r.POST(path, s.createItem)
	r.PUT(path+"/:id", s.updateItem)
	r.DELETE(path+"/:id", s.deleteItem)
	return r
}

// Start serves until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Router(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	s.Log.Info("items backend listening", "addr", s.Addr, "path", s.Path)
	return srv.ListenAndServe()
}

func (s *Server) listItems(c *gin.Context) {
	list := s.Store.List()
	// always an array on the wire, never null
	c.JSON(http.StatusOK, list)
}

func (s *Server) createItem(c *gin.Context) {
	var in items.Item
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created := s.Store.Create(in)
	s.Log.Info("item created", "id", created.ID, "name", created.Name)
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateItem(c *gin.Context) {
	id := c.Param("id")
	var in items.Item
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, ok := s.Store.Update(id, in)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	s.Log.Info("item updated", "id", id)
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteItem(c *gin.Context) {
	id := c.Param("id")
	if !s.Store.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	s.Log.Info("item deleted", "id", id)
	c.Status(http.StatusNoContent)
}

// SampleItems returns a handful of records for --seed.
func SampleItems() []items.Item {
	return []items.Item{
		{Name: "Widget", Description: "A widget", Category: "tools", Price: 9.99},
		{Name: "Gadget", Description: "A gadget with knobs", Category: "tools", Price: 24.50},
		{Name: "Doohickey", Description: "Uncategorized doohickey", Price: 0},
	}
}
