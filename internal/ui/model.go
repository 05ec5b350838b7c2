package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	fsnotify "github.com/fsnotify/fsnotify"

	"itemctl/internal/config"
	"itemctl/internal/items"
	"itemctl/internal/system"
)

type uiMode int

const (
	modeList uiMode = iota
	modeForm
	modeConfirmDelete
	modeHelp
)

// Model for the items console TUI.
type model struct {
	client *items.Client
	log    *system.Logger

	// reconciled console state
	items    []items.Item
	loading  bool
	errMsg   string
	endpoint string

	// list + chrome
	list      list.Model
	spin      spinner.Model
	width     int
	height    int
	now       time.Time
	notice    string
	hintText  string
	hintUntil time.Time
	quitting  bool

	// form state (create or edit); editing holds the detached copy's id
	mode    uiMode
	form    *huh.Form
	draft   *itemDraft
	editing bool

	// delete confirmation
	deleteTarget items.Item
	confirmIndex int // 0 = delete, 1 = cancel

	// command palette
	paletteOpen   bool
	paletteInput  textinput.Model
	slashFiltered []SlashCmd
	slashIndex    int

	// settings watcher
	watcher *fsnotify.Watcher
	watchCh <-chan struct{}
}

func initialModel() model {
	endpoint := config.Endpoint()
	lg := system.NewLogger("items-ui")
	m := model{
		client:   items.NewClient(endpoint, lg),
		log:      lg,
		endpoint: endpoint,
		list:     newItemList(),
		loading:  true,
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	m.spin = sp

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type a command"
	ti.CharLimit = 64
	m.paletteInput = ti

	m.hintText = "r refresh · n new · e edit · d delete · / palette · ? help · q quit"
	m.hintUntil = time.Now().Add(8 * time.Second)
	return m
}

// InitialModel is the public constructor for app.
func InitialModel() tea.Model { return initialModel() }

func (m model) Init() tea.Cmd {
	return tea.Batch(fetchCmd(m.client), m.spin.Tick, tickCmd(), watchStartCmd())
}
