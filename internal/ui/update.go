package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	zone "github.com/lrstanley/bubblezone"

	"itemctl/internal/config"
	"itemctl/internal/items"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && m.mode == modeList && !m.paletteOpen {
			if zone.Get("btn.new").InBounds(msg) {
				return m.openCreateForm()
			}
			if zone.Get("btn.refresh").InBounds(msg) {
				return m.startFetch()
			}
			if zone.Get("btn.help").InBounds(msg) {
				m.mode = modeHelp
				return m, nil
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lh := m.height - 12
		if lh < 5 {
			lh = 5
		}
		m.list.SetSize(maxInt(30, m.width-4), lh)
		m.paletteInput.Width = maxInt(20, m.width-8)
		return m, nil

	case tea.KeyMsg:
		// Always allow Ctrl+C to quit, even inside forms and overlays
		if msg.String() == "ctrl+c" {
			m.closeWatcher()
			m.quitting = true
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case itemsLoadedMsg:
		m.loading = false
		m.errMsg = ""
		m.items = msg.items
		setListItems(&m.list, msg.items)
		m.log.Debug("list reconciled", "count", len(msg.items), "elapsed", msg.elapsed.Round(time.Millisecond))
		return m, nil

	case opFailedMsg:
		m.loading = false
		// the single user-visible error string replaces any prior one
		m.errMsg = msg.err.Error()
		if msg.op == "fetch" {
			m.items = nil
			setListItems(&m.list, nil)
		}
		if msg.op == "create" && m.draft != nil {
			// failed create keeps the draft and reopens the form
			m.form = newItemForm(m.draft, "New item")
			m.mode = modeForm
			return m, m.form.Init()
		}
		return m, nil

	case mutationDoneMsg:
		// every successful mutation triggers a full list refetch
		switch msg.op {
		case "create":
			m.notice = "item created"
			m.draft = nil
		case "update":
			m.notice = "item updated"
		case "delete":
			m.notice = "item deleted"
		}
		m.loading = true
		return m, tea.Batch(fetchCmd(m.client), m.spin.Tick)

	case noticeMsg:
		m.notice = string(msg)
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case watchStartedMsg:
		m.watcher = msg.w
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(m.watchCh)

	case settingsChangedMsg:
		ep := config.Endpoint()
		if ep != m.endpoint {
			m.endpoint = ep
			m.client = items.NewClient(ep, m.log)
			m.notice = "endpoint changed: " + ep
			m.loading = true
			return m, tea.Batch(fetchCmd(m.client), m.spin.Tick, watchSubscribeCmd(m.watchCh))
		}
		return m, watchSubscribeCmd(m.watchCh)

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// overlays take priority over list keys
	switch m.mode {
	case modeForm:
		if msg.String() == "esc" {
			// discard: no network action, authoritative list untouched
			m.mode = modeList
			m.form = nil
			m.draft = nil
			m.editing = false
			return m, nil
		}
		return m.updateForm(msg)

	case modeConfirmDelete:
		switch msg.String() {
		case "left", "right", "tab", "shift+tab":
			m.confirmIndex = 1 - m.confirmIndex
			return m, nil
		case "y":
			return m.confirmDelete()
		case "n", "esc":
			m.mode = modeList
			return m, nil
		case "enter":
			if m.confirmIndex == 0 {
				return m.confirmDelete()
			}
			m.mode = modeList
			return m, nil
		}
		return m, nil

	case modeHelp:
		switch msg.String() {
		case "esc", "q", "?", "enter":
			m.mode = modeList
		}
		return m, nil
	}

	// palette handling
	if m.paletteOpen {
		switch msg.String() {
		case "esc":
			m.closePalette()
			return m, nil
		case "up":
			if len(m.slashFiltered) > 0 {
				m.slashIndex--
				if m.slashIndex < 0 {
					m.slashIndex = len(m.slashFiltered) - 1
				}
			}
			return m, nil
		case "down":
			if len(m.slashFiltered) > 0 {
				m.slashIndex++
				if m.slashIndex >= len(m.slashFiltered) {
					m.slashIndex = 0
				}
			}
			return m, nil
		case "enter":
			if len(m.slashFiltered) > 0 {
				cmdName := m.slashFiltered[m.slashIndex].Name
				m.closePalette()
				return m.execSlashCmd(cmdName)
			}
			m.closePalette()
			return m, nil
		}
		var cmd tea.Cmd
		m.paletteInput, cmd = m.paletteInput.Update(msg)
		m.refreshSlash()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.closeWatcher()
		m.quitting = true
		return m, tea.Quit
	case "/", "ctrl+p":
		m.paletteOpen = true
		m.paletteInput.SetValue("")
		m.paletteInput.Focus()
		m.slashIndex = 0
		m.refreshSlash()
		return m, nil
	case "x":
		m.errMsg = ""
		return m, nil
	case "?":
		m.mode = modeHelp
		return m, nil
	case "r":
		if m.loading {
			return m, nil // advisory gate: control disabled while loading
		}
		return m.startFetch()
	case "n":
		if m.loading {
			return m, nil
		}
		return m.openCreateForm()
	case "e", "enter":
		if m.loading {
			return m, nil
		}
		return m.openEditForm()
	case "d", "delete", "backspace":
		if m.loading {
			return m, nil
		}
		if it, ok := selectedItem(m.list); ok {
			m.deleteTarget = it
			m.confirmIndex = 1 // default to cancel for safety
			m.mode = modeConfirmDelete
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// execSlashCmd runs a palette command. Unlike the list keys these are not
// gated on the loading flag: the flag only disables controls, it is not a
// mutual-exclusion mechanism.
func (m model) execSlashCmd(name string) (tea.Model, tea.Cmd) {
	switch name {
	case "/refresh":
		return m.startFetch()
	case "/new":
		return m.openCreateForm()
	case "/edit":
		return m.openEditForm()
	case "/delete":
		if it, ok := selectedItem(m.list); ok {
			m.deleteTarget = it
			m.confirmIndex = 1
			m.mode = modeConfirmDelete
		}
		return m, nil
	case "/dismiss":
		m.errMsg = ""
		return m, nil
	case "/help":
		m.mode = modeHelp
		return m, nil
	case "/exit":
		m.closeWatcher()
		m.quitting = true
		return m, tea.Quit
	}
	return m, func() tea.Msg { return noticeMsg(fmt.Sprintf("unknown command %s", name)) }
}

func (m model) startFetch() (tea.Model, tea.Cmd) {
	m.loading = true
	m.notice = ""
	return m, tea.Batch(fetchCmd(m.client), m.spin.Tick)
}

func (m model) openCreateForm() (tea.Model, tea.Cmd) {
	m.draft = &itemDraft{}
	m.editing = false
	m.form = newItemForm(m.draft, "New item")
	m.mode = modeForm
	return m, m.form.Init()
}

func (m model) openEditForm() (tea.Model, tea.Cmd) {
	it, ok := selectedItem(m.list)
	if !ok {
		return m, nil
	}
	// detached client-side copy, mutated freely until saved or discarded
	m.draft = &itemDraft{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		Price:       strings.TrimPrefix(items.FormatPrice(it.Price), "$"),
	}
	m.editing = true
	m.form = newItemForm(m.draft, "Edit item")
	m.mode = modeForm
	return m, m.form.Init()
}

func (m model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	f, cmd := m.form.Update(msg)
	if ff, ok := f.(*huh.Form); ok {
		m.form = ff
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		m.mode = modeList
		m.form = nil
		m.draft = nil
		m.editing = false
		return m, nil
	}
	return m, cmd
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	d := m.draft
	m.mode = modeList
	m.form = nil
	if d == nil {
		return m, nil
	}
	price, err := d.price()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	it := items.Item{
		ID:          d.ID,
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
		Category:    strings.TrimSpace(d.Category),
		Price:       price,
	}
	m.loading = true
	if m.editing {
		m.editing = false
		if !it.HasID() {
			// no id yet: logged and skipped, no request goes out
			m.log.Warn("update skipped: item has no id", "name", it.Name)
			m.loading = false
			m.draft = nil
			return m, nil
		}
		m.draft = nil
		return m, tea.Batch(updateCmd(m.client, it), m.spin.Tick)
	}
	// the draft survives until the create succeeds
	return m, tea.Batch(createCmd(m.client, it), m.spin.Tick)
}

func (m model) confirmDelete() (tea.Model, tea.Cmd) {
	m.mode = modeList
	if !m.deleteTarget.HasID() {
		return m, nil
	}
	id := m.deleteTarget.ID
	m.deleteTarget = items.Item{}
	m.loading = true
	return m, tea.Batch(deleteCmd(m.client, id), m.spin.Tick)
}

func (m *model) closePalette() {
	m.paletteOpen = false
	m.paletteInput.Blur()
	m.paletteInput.SetValue("")
	m.slashIndex = 0
}

func (m *model) closeWatcher() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}
