package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"findpanel/internal/config"
	"findpanel/internal/document"
	"findpanel/internal/domain"
	"findpanel/internal/eventbus"
	"findpanel/internal/ui/console"
	"findpanel/internal/ui/coordinator"
	"findpanel/internal/ui/editorview"
	"findpanel/internal/ui/handlers"
	"findpanel/internal/ui/input"
	inputtypes "findpanel/internal/ui/input/types"
	"findpanel/internal/ui/searchinput"
	"findpanel/internal/ui/services/navigation"
	"findpanel/internal/ui/state"
	"findpanel/internal/ui/views"
	"findpanel/internal/workspace"
)

// Model is the host editor: the active document on top, the search panel
// below it and the results console at the bottom
type Model struct {
	bus           eventbus.EventBus
	config        *config.Config
	configService config.ConfigService
	state         *state.AppState
	workspace     *workspace.Workspace

	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode
	closeArmed  *document.Document
	forceQuit   bool

	// Components
	coordinator  *coordinator.Coordinator
	searchInput  *searchinput.Model
	console      *console.Model
	editor       *editorview.Model
	styles       *views.Styles
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	pager        *PagerOps

	unsubscribe []func()
}

// NewModel creates a new UI model. configService may be nil, in which case
// the panel settings are never saved.
func NewModel(bus eventbus.EventBus, cfg *config.Config, configService config.ConfigService, ws *workspace.Workspace) *Model {
	styles := views.NewStyles()
	appState := state.NewAppState(cfg.UI.ResultsHeight)

	m := &Model{
		bus:           bus,
		config:        cfg,
		configService: configService,
		state:         appState,
		workspace:     ws,
		help:          help.New(),
		styles:        styles,
		renderer:      views.NewRenderer(styles),
		searchInput:   searchinput.New(bus, styles),
		console:       console.New(styles),
		editor:        editorview.New(styles, cfg.UI.ShowLineNumbers),
		eventHandler:  handlers.NewEventHandler(appState),
		pager:         NewPagerOps(),
	}
	m.inputHandler = input.New(inputtypes.DefaultKeyMap(), m.searchInput)
	m.coordinator = coordinator.NewCoordinator(bus, m.searchInput, m.console)
	if err := m.coordinator.RestoreSettings(cfg.Panel); err != nil {
		log.Printf("Failed to restore panel settings: %v", err)
	}

	m.unsubscribe = append(m.unsubscribe, m.eventHandler.Subscribe(bus)...)
	m.unsubscribe = append(m.unsubscribe, bus.Subscribe(eventbus.EventDocumentChanged, func(e eventbus.DomainEvent) {
		m.editor.SetDocument(m.workspace.Active())
	}))

	// Documents opened before the model existed
	if doc := ws.Active(); doc != nil {
		m.editor.SetDocument(doc)
		m.coordinator.Search.OnDocumentChanged(doc)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Coordinator exposes the search coordinator
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.updateSizes()
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}

		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncFocus()

		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.syncFocus()
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	vs := views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		ActiveTab:     m.workspace.ActiveIndex(),
		Editor:        m.editor.View(),
		SearchInput:   m.searchInput.View(m.state.Width),
		Results:       m.console.View(m.state.Focus == state.PaneResults),
		ResultCount:   m.console.Len(),
		Focus:         m.state.Focus,
		Mode:          m.inputHandler.CurrentMode(),
		StatusMessage: m.state.StatusMessage,
		StatusKind:    m.state.StatusKind,
		ShowHelp:      m.state.ShowHelp,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
	}
	for _, doc := range m.workspace.Documents() {
		vs.Tabs = append(vs.Tabs, views.Tab{Name: doc.Name(), Dirty: doc.Dirty()})
	}

	return m.renderer.Render(vs)
}

// Close unsubscribes the model and its coordinator from the bus
func (m *Model) Close() {
	m.coordinator.Close()
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
}

func (m *Model) updateSizes() {
	m.editor.SetSize(m.state.Width, m.state.EditorHeight())
	m.console.SetSize(m.state.Width, m.state.ResultsHeight)
}

// resultsTop is the screen row of the first console line: tab bar, editor,
// rule, two search input rows and another rule
func (m *Model) resultsTop() int {
	return 1 + m.state.EditorHeight() + 1 + 2 + 1
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.inputHandler.Keys()
	switch msg.String() {
	case "?", "esc", "q":
		m.state.ShowHelp = false
	case "ctrl+c":
		return m.quit(false)
	case "H":
		m.state.ShowHelp = false
		return m.showInPager("findpanel Help", m.renderer.RenderHelpContent(keys, m.help))
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	row := msg.Y - m.resultsTop()
	if row < 0 || row >= m.state.ResultsHeight {
		return
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.console.Len() == 0 {
			return
		}
		m.bus.Publish(domain.ResultLineClickedEvent{Position: domain.Point{X: msg.X, Y: row}})
	case msg.Button == tea.MouseButtonWheelUp:
		m.console.Move(navigation.DirectionUp)
	case msg.Button == tea.MouseButtonWheelDown:
		m.console.Move(navigation.DirectionDown)
	}
}

// syncFocus returns the input handler to normal mode when something else,
// such as a jump to a result, moved focus to the editor
func (m *Model) syncFocus() {
	if m.state.Focus != state.PaneEditor || m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
		return
	}
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, &modelContext{m: m})
	m.searchInput.Blur()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeResults {
			m.console.Move(navigation.Direction(a.Direction))
		} else {
			m.moveEditorCursor(a.Direction)
		}

	case inputtypes.ChangeModeAction:
		return m.focusMode(a.Mode)

	case inputtypes.QuitAction:
		return m.quit(!a.Force)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.HelpPagerAction:
		return m.showInPager("findpanel Help", m.renderer.RenderHelpContent(m.inputHandler.Keys(), m.help))

	case inputtypes.SearchNavigateAction:
		text := m.searchInput.SearchText()
		if text == "" {
			m.state.SetStatus(state.StatusInfo, "Nothing to search for, press / to enter a search")
			return nil
		}
		m.coordinator.FindAgain(text, m.searchInput.Options(), a.Direction == "prev")

	case inputtypes.SwitchDocumentAction:
		if a.Delta < 0 {
			m.workspace.Prev()
		} else {
			m.workspace.Next()
		}

	case inputtypes.SaveAction:
		m.saveActive()

	case inputtypes.CloseDocumentAction:
		m.closeActive()

	case inputtypes.ActivateAction:
		m.searchInput.Activate(a.All)

	case inputtypes.ToggleOptionAction:
		if err := m.searchInput.ToggleOption(a.Option); err != nil {
			m.state.SetStatus(state.StatusError, fmt.Sprintf("Error: %v", err))
		}

	case inputtypes.JumpToResultAction:
		m.bus.Publish(domain.ResultLineClickedEvent{Position: m.console.CursorPoint()})

	case inputtypes.CopyResultAction:
		if _, err := m.console.CopyCursorLine(); err != nil {
			m.bus.Publish(domain.ErrorEvent{Message: "copy failed", Err: err})
		} else {
			m.state.SetStatus(state.StatusSuccess, "Copied line to clipboard")
		}

	case inputtypes.ResultsPagerAction:
		return m.showInPager("Search results", m.console.PlainText())
	}

	return nil
}

func (m *Model) moveEditorCursor(direction string) {
	doc := m.workspace.Active()
	if doc == nil {
		return
	}
	page := m.state.EditorHeight()
	switch navigation.Direction(direction) {
	case navigation.DirectionUp:
		doc.MoveCursorBy(-1)
	case navigation.DirectionDown:
		doc.MoveCursorBy(1)
	case navigation.DirectionPageUp:
		doc.MoveCursorBy(-page)
	case navigation.DirectionPageDown:
		doc.MoveCursorBy(page)
	case navigation.DirectionHome:
		doc.MoveCursorTo(0)
	case navigation.DirectionEnd:
		doc.MoveCursorTo(doc.LineCount() - 1)
	}
}

func (m *Model) focusMode(mode inputtypes.Mode) tea.Cmd {
	switch mode {
	case inputtypes.ModeFind:
		m.state.Focus = state.PaneSearch
		return m.searchInput.Focus(searchinput.FieldSearch)
	case inputtypes.ModeReplace:
		m.state.Focus = state.PaneSearch
		return m.searchInput.Focus(searchinput.FieldReplace)
	case inputtypes.ModeResults:
		m.state.Focus = state.PaneResults
	default:
		m.state.Focus = state.PaneEditor
	}
	m.searchInput.Blur()
	return nil
}

func (m *Model) saveActive() {
	doc := m.workspace.Active()
	if doc == nil {
		return
	}
	if err := doc.Save(); err != nil {
		log.Printf("Save failed for %s: %v", doc.Name(), err)
		m.bus.Publish(domain.ErrorEvent{Message: fmt.Sprintf("failed to save %s", doc.Name()), Err: err})
	}
}

// closeActive closes the active document. A document with unsaved changes
// needs a second ctrl+w.
func (m *Model) closeActive() {
	doc := m.workspace.Active()
	if doc == nil {
		return
	}
	if doc.Dirty() && m.closeArmed != doc {
		m.closeArmed = doc
		m.state.SetStatus(state.StatusError, fmt.Sprintf("%s has unsaved changes, press ctrl+w again to discard them", doc.Name()))
		return
	}
	m.closeArmed = nil
	m.workspace.CloseActive()
	m.state.SetStatus(state.StatusInfo, fmt.Sprintf("Closed %s", doc.Name()))
	log.Printf("Closed document %s", doc.Name())
}

// ForceQuit reports whether the program ended with ctrl+c, in which case
// nothing is saved
func (m *Model) ForceQuit() bool {
	return m.forceQuit
}

// SaveSettings stores the live panel settings in the config file
func (m *Model) SaveSettings() error {
	if m.configService == nil {
		return nil
	}
	settings, err := m.coordinator.CaptureSettings()
	if err != nil {
		return fmt.Errorf("failed to capture panel settings: %w", err)
	}
	m.config.Panel = settings
	return m.configService.Save(m.config)
}

func (m *Model) quit(saveConfig bool) tea.Cmd {
	return func() tea.Msg {
		return quitMsg{saveConfig: saveConfig}
	}
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(title, content string) tea.Cmd {
	return func() tea.Msg {
		if m.pager.program == nil {
			return pagerMsg{title: title, err: fmt.Errorf("program not set")}
		}
		// Send pause message to stop rendering
		m.pager.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(title, content)

		// Send resume message to restart rendering
		m.pager.program.Send(resumeRenderingMsg{})

		return pagerMsg{title: title, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed for %s: %v", msg.title, msg.err)
			m.state.SetStatus(state.StatusError, fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case quitMsg:
		m.forceQuit = !msg.saveConfig
		if msg.saveConfig && m.config.UI.SaveOnExit {
			if err := m.SaveSettings(); err != nil {
				log.Printf("Failed to save settings: %v", err)
			}
		}
		return m, tea.Quit

	default:
		// Cursor blink and other text field messages
		if m.inputHandler.CurrentMode().IsText() {
			return m, m.searchInput.Update(msg)
		}
		return m, nil
	}
}

// modelContext implements the input Context for the model
type modelContext struct {
	m *Model
}

func (c *modelContext) HasDocument() bool {
	return c.m.workspace.Active() != nil
}

func (c *modelContext) ResultCount() int {
	return c.m.console.Len()
}
