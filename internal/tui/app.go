package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/sift/internal/agent"
	"github.com/sant0-9/sift/internal/config"
	"github.com/sant0-9/sift/internal/engine"
	"github.com/sant0-9/sift/internal/mail"
	"github.com/sant0-9/sift/internal/processor"
	"github.com/sant0-9/sift/internal/prompts"
)

type view int

const (
	viewWelcome view = iota
	viewInbox
	viewEmail
	viewAgent
	viewPrompts
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, err := config.Load()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	// First run: persist the defaults so later sessions load the same file
	if err == nil && !config.Exists() {
		err = cfg.Save()
	}
	s.config = cfg
	if err != nil {
		s.statusMsg = "Config error: " + err.Error()
	}

	path, err := cfg.PromptsFile()
	if err == nil {
		s.store, s.storeErr = prompts.New(path)
	} else {
		s.store, _ = prompts.New("")
		s.storeErr = err
	}

	s.engine = engine.New()
	s.processor = processor.New(s.engine, s.store)
	s.router = agent.New(s.processor, s.engine)
	s.inbox = mail.NewInbox()

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

// inboxProcessedMsg carries the processed copies back to the event loop;
// the shared records are only touched in Update
type inboxProcessedMsg struct {
	emails []*mail.Email
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case inboxProcessedMsg:
		a.applyProcessed(msg.emails)
		a.state.processing = false
		a.state.statusMsg = "All emails processed"
	}

	// Route input to the active text component
	if a.view == viewAgent {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewPrompts && a.state.editing {
		var cmd tea.Cmd
		a.state.promptEditor, cmd = a.state.promptEditor.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return tea.Quit
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a.goBack()

	case key.Matches(msg, keys.Enter):
		return a.handleEnter()
	}

	switch a.view {
	case viewWelcome:
		return a.handleWelcomeKey(msg)
	case viewInbox:
		return a.handleInboxKey(msg)
	case viewEmail:
		return a.handleEmailKey(msg)
	case viewPrompts:
		return a.handlePromptsKey(msg)
	}

	return nil
}

// goBack unwinds one level of navigation; from the welcome view it quits
func (a *App) goBack() tea.Cmd {
	a.state.statusMsg = ""

	switch a.view {
	case viewWelcome:
		a.quitting = true
		return tea.Quit
	case viewEmail:
		a.view = viewInbox
	case viewPrompts:
		if a.state.editing {
			a.state.editing = false
			a.state.promptEditor.Blur()
			return nil
		}
		a.view = viewWelcome
	default:
		a.view = viewWelcome
	}
	return nil
}

func (a *App) handleEnter() tea.Cmd {
	switch a.view {
	case viewWelcome:
		a.openInbox()
	case viewInbox:
		visible := a.visibleEmails()
		if a.state.loaded && a.state.cursor < len(visible) {
			a.state.selected = visible[a.state.cursor]
			a.state.selected.Read = true
			a.view = viewEmail
		}
	case viewAgent:
		return a.submitQuery()
	case viewPrompts:
		if !a.state.editing {
			a.startEditing()
		}
	}
	return nil
}

func (a *App) handleWelcomeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "i":
		a.openInbox()
	case "a":
		a.openAgent()
		return textinput.Blink
	case "p":
		a.view = viewPrompts
	case "?":
		a.view = viewHelp
	}
	return nil
}

func (a *App) handleInboxKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if a.state.cursor > 0 {
			a.state.cursor--
		}
	case key.Matches(msg, keys.Down):
		if a.state.cursor < len(a.visibleEmails())-1 {
			a.state.cursor++
		}
	case key.Matches(msg, keys.Process):
		if a.state.loaded && !a.state.processing {
			a.state.processing = true
			return a.processAll()
		}
	case msg.String() == "f":
		a.cycleFilter()
	case msg.String() == "t":
		a.toggleShowRead()
	case msg.String() == "a":
		a.openAgent()
		return textinput.Blink
	}
	return nil
}

var filterCycle = []mail.Category{
	mail.CategoryUnset,
	mail.CategoryImportant,
	mail.CategoryToDo,
	mail.CategoryNewsletter,
	mail.CategorySpam,
}

func (a *App) cycleFilter() {
	for i, c := range filterCycle {
		if c == a.state.filter {
			a.state.filter = filterCycle[(i+1)%len(filterCycle)]
			a.state.cursor = 0
			return
		}
	}
	a.state.filter = mail.CategoryUnset
	a.state.cursor = 0
}

// toggleShowRead flips read-email visibility and persists the setting
func (a *App) toggleShowRead() {
	a.state.config.ShowRead = !a.state.config.ShowRead
	a.state.cursor = 0
	if err := a.state.config.Save(); err != nil {
		a.state.statusMsg = "Config save failed: " + err.Error()
	} else if a.state.config.ShowRead {
		a.state.statusMsg = "Showing read emails"
	} else {
		a.state.statusMsg = "Hiding read emails"
	}
}

// visibleEmails applies the category filter and the show-read setting
func (a *App) visibleEmails() []*mail.Email {
	var visible []*mail.Email
	for _, e := range a.state.emails {
		if a.state.filter != mail.CategoryUnset && e.Category != a.state.filter {
			continue
		}
		if !a.state.config.ShowRead && e.Read {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

func (a *App) handleEmailKey(msg tea.KeyMsg) tea.Cmd {
	e := a.state.selected
	if e == nil {
		return nil
	}

	switch msg.String() {
	case "s":
		e.Summary = a.state.processor.Summarize(e)
	case "x":
		if len(e.Actions) == 0 {
			e.Actions = a.state.processor.ExtractActions(e)
		}
	case "r":
		e.DraftReply = a.state.processor.DraftReply(e)
	case "a":
		a.openAgent()
		return textinput.Blink
	}
	return nil
}

func (a *App) handlePromptsKey(msg tea.KeyMsg) tea.Cmd {
	if a.state.editing {
		if key.Matches(msg, keys.Save) {
			return a.savePrompt()
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if a.state.promptCursor > 0 {
			a.state.promptCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.state.promptCursor < len(prompts.Keys)-1 {
			a.state.promptCursor++
		}
	case msg.String() == "r":
		if err := a.state.store.ResetToDefaults(); err != nil {
			a.state.statusMsg = "Reset failed: " + err.Error()
		} else {
			a.state.statusMsg = "Prompts reset to defaults"
		}
	}
	return nil
}

func (a *App) openInbox() {
	if !a.state.loaded {
		a.state.emails = a.state.inbox.All()
		a.state.loaded = true
	}
	a.view = viewInbox
}

func (a *App) openAgent() {
	if !a.state.loaded {
		a.state.emails = a.state.inbox.All()
		a.state.loaded = true
	}
	a.view = viewAgent
	a.state.input.Focus()
}

// processAll processes a snapshot of the inbox off the event loop. The
// records the views render are never written outside Update.
func (a *App) processAll() tea.Cmd {
	snapshot := make([]*mail.Email, len(a.state.emails))
	for i, e := range a.state.emails {
		clone := *e
		snapshot[i] = &clone
	}
	proc := a.state.processor
	return func() tea.Msg {
		proc.ProcessBatch(snapshot)
		return inboxProcessedMsg{emails: snapshot}
	}
}

// applyProcessed copies derived fields from processed clones onto the
// shared records, matching by id
func (a *App) applyProcessed(processed []*mail.Email) {
	byID := make(map[int]*mail.Email, len(processed))
	for _, e := range processed {
		byID[e.ID] = e
	}
	for _, e := range a.state.emails {
		p, ok := byID[e.ID]
		if !ok {
			continue
		}
		e.Category = p.Category
		e.Actions = p.Actions
		e.Summary = p.Summary
	}
}

func (a *App) submitQuery() tea.Cmd {
	text := strings.TrimSpace(a.state.input.Value())
	if text == "" {
		return nil
	}
	a.state.input.Reset()

	resp := a.state.router.Respond(text, a.state.emails, a.state.selected)
	a.state.history = append(a.state.history,
		message{role: "user", content: text},
		message{role: "assistant", content: resp},
	)
	return nil
}

func (a *App) startEditing() {
	key := prompts.Keys[a.state.promptCursor]
	a.state.promptEditor.SetValue(a.state.store.Get(key))
	a.state.promptEditor.Focus()
	a.state.editing = true
	a.state.statusMsg = ""
}

func (a *App) savePrompt() tea.Cmd {
	key := prompts.Keys[a.state.promptCursor]
	if err := a.state.store.Update(key, a.state.promptEditor.Value()); err != nil {
		a.state.statusMsg = "Save failed: " + err.Error()
		return nil
	}
	a.state.editing = false
	a.state.promptEditor.Blur()
	a.state.statusMsg = "Saved " + key
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewInbox:
		return a.renderInbox()
	case viewEmail:
		return a.renderEmail()
	case viewAgent:
		return a.renderAgent()
	case viewPrompts:
		return a.renderPrompts()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}

// centerVertically pads content to sit in the middle of the screen
func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
