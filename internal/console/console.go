// Package console holds the items console state and its four operations:
// fetch, create, update, delete against one collection endpoint, each
// followed by state reconciliation. Successful mutations refetch the full
// list instead of patching locally, keeping the client consistent with the
// server at the cost of an extra round trip.
package console

import (
	"context"
	"errors"

	"itemctl/internal/items"
	"itemctl/internal/system"
)

// Console owns the single in-memory item list plus the loading flag, the
// user-visible error string, and the client-side drafts. It is meant to be
// driven from one goroutine (a UI event loop or a CLI call chain); Loading is
// advisory and does not provide mutual exclusion.
type Console struct {
	client *items.Client
	log    *system.Logger

	// Items is the authoritative client copy of the collection, ordered as
	// the server returned it.
	Items   []items.Item
	Loading bool
	// Err is the single user-visible error message; each failure replaces
	// the previous one.
	Err string

	// Draft is the not-yet-submitted new-item value.
	Draft    items.Item
	FormOpen bool
	// Editing is a detached copy of one entry, mutated freely until saved
	// or discarded.
	Editing *items.Item
}

// New returns a console bound to the given client. A nil logger falls back
// to a console-component logger on stderr.
func New(client *items.Client, log *system.Logger) *Console {
	if log == nil {
		log = system.NewLogger("console")
	}
	return &Console{client: client, log: log}
}

// Client exposes the underlying HTTP client.
func (c *Console) Client() *items.Client { return c.client }

// Fetch replaces the item list with the server collection. It is the only
// operation that clears a prior error on entry. On failure the error is
// surfaced and the list cleared.
func (c *Console) Fetch(ctx context.Context) error {
	c.Loading = true
	c.Err = ""
	defer func() { c.Loading = false }()

	list, err := c.client.List(ctx)
	if err != nil {
		c.log.Error("fetch items failed", err)
		c.Err = err.Error()
		c.Items = nil
		return err
	}
	c.Items = list
	c.log.Info("items fetched", "count", len(list))
	return nil
}

// Create submits the draft. On success the list is refetched, the form
// closed and the draft reset; on failure the error is surfaced and the draft
// stays as typed.
func (c *Console) Create(ctx context.Context) error {
	c.Loading = true
	defer func() { c.Loading = false }()

	if err := c.Draft.Validate(); err != nil {
		c.log.Warn("create rejected", "err", err)
		c.Err = err.Error()
		return err
	}
	created, err := c.client.Create(ctx, c.Draft)
	if err != nil {
		c.log.Error("create item failed", err, "name", c.Draft.Name)
		c.Err = err.Error()
		return err
	}
	c.log.Info("item created", "id", created.ID, "name", created.Name)
	c.FormOpen = false
	c.Draft = items.Item{}
	return c.Fetch(ctx)
}

// Update submits the in-progress edit. An edit without a server id is logged
// and skipped entirely: no request, no error banner, list unchanged. On
// success the list is refetched and the edit target cleared.
func (c *Console) Update(ctx context.Context) error {
	if c.Editing == nil {
		return nil
	}
	c.Loading = true
	defer func() { c.Loading = false }()

	if !c.Editing.HasID() {
		c.log.Warn("update skipped: editing item has no id", "name", c.Editing.Name)
		return nil
	}
	if err := c.Editing.Validate(); err != nil {
		c.log.Warn("update rejected", "err", err)
		c.Err = err.Error()
		return err
	}
	updated, err := c.client.Update(ctx, *c.Editing)
	if err != nil {
		if errors.Is(err, items.ErrMissingID) {
			return nil
		}
		c.log.Error("update item failed", err, "id", c.Editing.ID)
		c.Err = err.Error()
		return err
	}
	c.log.Info("item updated", "id", updated.ID)
	c.Editing = nil
	return c.Fetch(ctx)
}

// Delete removes the item with the given id. No local existence check is
// made; the server response decides. The list is refetched only on success.
func (c *Console) Delete(ctx context.Context, id string) error {
	c.Loading = true
	defer func() { c.Loading = false }()

	if err := c.client.Delete(ctx, id); err != nil {
		c.log.Error("delete item failed", err, "id", id)
		c.Err = err.Error()
		return err
	}
	c.log.Info("item deleted", "id", id)
	return c.Fetch(ctx)
}

// StartEdit detaches a copy of the item at index i as the edit target.
func (c *Console) StartEdit(i int) bool {
	if i < 0 || i >= len(c.Items) {
		return false
	}
	cp := c.Items[i]
	c.Editing = &cp
	return true
}

// DiscardEdit drops the in-progress edit without any network action; the
// authoritative list is untouched.
func (c *Console) DiscardEdit() { c.Editing = nil }

// DismissError clears the error banner.
func (c *Console) DismissError() { c.Err = "" }
