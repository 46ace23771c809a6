package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/config"
	"bookdesk/internal/countdown"
	"bookdesk/internal/domain"
	"bookdesk/internal/eventbus"
	"bookdesk/internal/logic"
	"bookdesk/internal/ui/commands"
	"bookdesk/internal/ui/input"
	"bookdesk/internal/ui/input/modes"
	inputtypes "bookdesk/internal/ui/input/types"
	uilogic "bookdesk/internal/ui/logic"
	selectionsvc "bookdesk/internal/ui/services/selection"
	"bookdesk/internal/ui/state"
	"bookdesk/internal/ui/views"
)

// rows taken by title, header, footer and padding
const chromeHeight = 10

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	store  logic.BookingStore
	clock  func() time.Time

	width          int
	height         int
	help           help.Model
	keys           keyMap
	previousFilter string // restored when filter editing is cancelled

	selection    *selectionsvc.Service
	searchFilter *uilogic.SearchFilter
	navigator    *uilogic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	cmdExecutor  *commands.Executor
	pager        *PagerOps
}

// Option configures a Model
type Option func(*Model)

// WithClock replaces time.Now, mainly for tests
func WithClock(clock func() time.Time) Option {
	return func(m *Model) { m.clock = clock }
}

// NewModel creates a new UI model over the bookings in store
func NewModel(cfg *config.Config, store logic.BookingStore, bus eventbus.EventBus, opts ...Option) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(),
		store:        store,
		clock:        time.Now,
		help:         help.New(),
		keys:         newKeyMap(),
		selection:    selectionsvc.NewService(bus),
		searchFilter: uilogic.NewSearchFilter(cfg.UISettings.FuzzyDistance),
		navigator:    uilogic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowAmounts),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.cmdExecutor = commands.NewExecutor(store, m.selection, bus)
	m.state.Now = m.clock()
	m.reload()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init starts the countdown ticker
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.config.UISettings.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.ViewportHeight = max(1, msg.Height-chromeHeight)
		m.syncViewport()
		return m, nil

	case tickMsg:
		m.state.Now = m.clock()
		m.expireHolds()
		return m, m.tick()

	case commands.DoneMsg:
		m.state.StatusMessage = msg.Summary()
		m.reload()
		return m, nil

	case receiptPagerMsg:
		if msg.err != nil {
			log.Printf("Receipt pager for %s: %v", msg.bookingID, msg.err)
			m.state.StatusMessage = fmt.Sprintf("Could not open receipt: %v", msg.err)
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state, Selection: m.selection}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.handleAction(action))
		}
		return m, tea.Batch(cmds...)
	}

	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.UpdateState(m.state.Cursor, m.state.ViewportOffset, m.state.ViewportHeight, len(m.state.Visible))
		m.state.Cursor, m.state.ViewportOffset = m.navigator.Navigate(a.Direction)

	case inputtypes.SelectAction:
		index := a.Index
		if index < 0 {
			index = m.state.Cursor
		}
		m.selection.Toggle(m.state.Visible, index)

	case inputtypes.ToggleAllAction:
		m.selection.ToggleAll(m.state.Visible)

	case inputtypes.DeselectAllAction:
		m.selection.DeselectVisible(m.state.Visible)

	case inputtypes.SelectRangeAction:
		m.selection.SelectRange(m.state.Visible, m.state.Cursor)

	case inputtypes.UpdateTextAction:
		m.applyFilter(a.Text)

	case inputtypes.SubmitTextAction:
		m.applyFilter(a.Text)
		m.previousFilter = m.state.FilterQuery

	case inputtypes.CancelTextAction:
		m.applyFilter(m.previousFilter)

	case inputtypes.ClearFilterAction:
		m.applyFilter("")
		m.previousFilter = ""

	case inputtypes.PayAction:
		return m.bulk(m.cmdExecutor.ExecutePay())

	case inputtypes.CancelBookingsAction:
		return m.bulk(m.cmdExecutor.ExecuteCancel())

	case inputtypes.OpenReceiptAction:
		if b, ok := m.state.Booking(a.ID); ok {
			return m.pager.showReceipt(b, m.state.Now)
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// bulk reports an empty selection when the executor had nothing to run
func (m *Model) bulk(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		m.state.StatusMessage = "No bookings selected"
	}
	return cmd
}

func (m *Model) handleEvent(event domain.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.ErrorEvent:
		m.state.StatusMessage = e.Message
	case domain.BookingsLoadedEvent:
		m.state.StatusMessage = fmt.Sprintf("Loaded %d booking(s) from %s", e.Count, e.Source)
		m.reload()
	}
	return nil
}

// reload refreshes the booking snapshot from the store
func (m *Model) reload() {
	m.state.SetBookings(m.store.Ordered())
	m.selection.Prune(m.state.Known)
	m.refilter()
}

func (m *Model) applyFilter(query string) {
	m.state.FilterQuery = query
	m.refilter()
}

func (m *Model) refilter() {
	ordered := make([]*domain.Booking, 0, len(m.state.Ordered))
	for _, id := range m.state.Ordered {
		ordered = append(ordered, m.state.Bookings[id])
	}
	m.state.SetVisible(m.searchFilter.Visible(ordered, m.state.FilterQuery))
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.navigator.UpdateState(m.state.Cursor, m.state.ViewportOffset, m.state.ViewportHeight, len(m.state.Visible))
	m.state.Cursor, m.state.ViewportOffset = m.navigator.EnsureVisible()
}

// expireHolds moves bookings whose payment hold has lapsed to expired
func (m *Model) expireHolds() {
	var expired []string
	for _, id := range m.state.Ordered {
		b := m.state.Bookings[id]
		if b.Status != domain.StatusAwaitingPayment || b.HoldExpiresAt.IsZero() {
			continue
		}
		if !m.state.Now.Before(b.HoldExpiresAt) {
			expired = append(expired, id)
		}
	}
	if len(expired) == 0 {
		return
	}

	for _, id := range m.store.SetStatus(expired, domain.StatusExpired) {
		log.Printf("Payment hold expired for booking %s", id)
		if m.bus != nil {
			m.bus.Publish(domain.HoldExpiredEvent{ID: id})
		}
	}
	m.state.StatusMessage = fmt.Sprintf("%d payment hold(s) expired", len(expired))
	m.reload()
}

// countdowns computes the hold countdown for every visible booking awaiting payment
func (m *Model) countdowns() map[string]*countdown.Countdown {
	out := make(map[string]*countdown.Countdown)
	for _, id := range m.state.Visible {
		b := m.state.Bookings[id]
		if b.Status == domain.StatusAwaitingPayment {
			out[id] = countdown.FromDeadline(m.state.Now, b.HoldExpiresAt)
		}
	}
	return out
}

// View renders the UI
func (m *Model) View() string {
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Bookings:       m.state.Bookings,
		Visible:        m.state.Visible,
		Cursor:         m.state.Cursor,
		Selected:       m.selection.Selected(),
		Aggregate:      m.selection.Aggregate(m.state.Visible),
		Countdowns:     m.countdowns(),
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		StatusMessage:  m.state.StatusMessage,
		FilterQuery:    m.state.FilterQuery,
		InputMode:      m.inputHandler.CurrentMode().String(),
		ShowHelp:       m.state.ShowHelp,
		HelpModel:      m.help,
		KeyMap:         m.keys,
	}
	if m.state.ShowHelp {
		vs.HelpContent = renderHelpContent()
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.TextInput = ti.View()
	}
	if prompter, ok := m.inputHandler.ModeHandler().(interface{ Prompt() string }); ok {
		vs.TextPrompt = prompter.Prompt()
	}
	if confirm, ok := m.inputHandler.ModeHandler().(*modes.ConfirmMode); ok {
		vs.ConfirmCount = confirm.Count()
	}
	return m.renderer.Render(vs)
}
