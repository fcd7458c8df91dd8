package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sant0-9/sift/internal/agent"
	"github.com/sant0-9/sift/internal/config"
	"github.com/sant0-9/sift/internal/engine"
	"github.com/sant0-9/sift/internal/mail"
	"github.com/sant0-9/sift/internal/processor"
	"github.com/sant0-9/sift/internal/prompts"
)

type state struct {
	// Config
	config *config.Config

	// Core services
	store     *prompts.Store
	engine    *engine.Engine
	processor *processor.Processor
	router    *agent.Router

	// Inbox state
	inbox      *mail.Inbox
	emails     []*mail.Email
	loaded     bool
	cursor     int
	selected   *mail.Email
	filter     mail.Category
	processing bool

	// Agent chat
	history []message
	input   textinput.Model

	// Prompt brain
	promptCursor int
	promptEditor textarea.Model
	editing      bool
	statusMsg    string

	// Errors
	storeErr error
}

type message struct {
	role    string
	content string
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Ask about your emails..."
	input.CharLimit = 500
	input.Width = 60

	editor := textarea.New()
	editor.Placeholder = "Prompt text..."
	editor.CharLimit = 2000
	editor.SetWidth(64)
	editor.SetHeight(6)

	return &state{
		input:        input,
		promptEditor: editor,
	}
}
