// Package tui is the terminal host for one decorated field: a bubbletea
// program that feeds keystrokes to the engine and draws its snapshot.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/materialfield/internal/colors"
	"github.com/alexisbeaulieu97/materialfield/internal/engine"
	"github.com/alexisbeaulieu97/materialfield/internal/icon"
	"github.com/alexisbeaulieu97/materialfield/internal/logger"
	"github.com/alexisbeaulieu97/materialfield/internal/measure"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
	"github.com/alexisbeaulieu97/materialfield/internal/tween"
	"github.com/alexisbeaulieu97/materialfield/internal/validation"
)

const (
	defaultWidth = 48
	frameRate    = time.Second / 60
	// fieldTop is the first screen row of the field, below the title.
	fieldTop = 2
)

// Options describes the field the demo hosts.
type Options struct {
	Title       string
	Config      model.FieldConfig
	Validators  []validation.Validator
	LeftIcon    *icon.Source
	RightIcon   *icon.Source
	ClearIcon   *icon.Source
	HelperText  string
	InitialText string
	Error       string
	Focused     bool
	Disabled    bool
	Width       int
	Logger      *logger.Logger
}

type frameMsg time.Time

// layoutCounter is the engine's host; bubbletea redraws after every message
// anyway, so it only counts layout requests for the debug panel.
type layoutCounter struct {
	layouts int
}

func (c *layoutCounter) RequestLayout() { c.layouts++ }
func (c *layoutCounter) Invalidate()    {}

// Model contains the bubbletea state of the demo.
type Model struct {
	field      *engine.Engine
	scheduler  *tween.Scheduler
	host       *layoutCounter
	input      textinput.Model
	title      string
	width      int
	background colors.Color
	lastFrame  time.Time
	ticking    bool
	showDebug  bool
	quitting   bool
}

// NewModel builds the field from opts.
func NewModel(opts Options) Model {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	cfg := CellConfig(opts.Config)
	scheduler := tween.NewScheduler()
	host := &layoutCounter{}
	field := engine.New(cfg,
		engine.WithDriver(scheduler),
		engine.WithMeasurer(measure.Terminal{}),
		engine.WithHost(host),
		engine.WithLogger(opts.Logger),
		engine.WithHelperText(opts.HelperText),
	)

	for _, v := range opts.Validators {
		field.AddValidator(v)
	}
	field.SetIconLeft(opts.LeftIcon)
	field.SetIconRight(opts.RightIcon)
	field.SetClearButtonIcon(opts.ClearIcon)
	field.SetInitialText(opts.InitialText)
	field.SetSize(width, 2)
	field.Attach()

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = cfg.FloatingLabelText
	input.SetValue(opts.InitialText)

	// The background is whichever of black and white the base color reads on.
	background := colors.White
	if cfg.BaseColor.IsLight() {
		background = colors.Black
	}

	m := Model{
		field:      field,
		scheduler:  scheduler,
		host:       host,
		input:      input,
		title:      opts.Title,
		width:      width,
		background: background,
		ticking:    true,
	}
	if opts.Focused {
		m.setFocus(true)
	}
	if opts.Disabled {
		field.SetEnabled(false)
	}
	// Last, so the initial focus does not clear it.
	field.SetError(opts.Error)
	m.syncSize()
	return m
}

// Init starts the frame clock. It stops by itself once nothing animates and
// restarts on the next change.
func (m Model) Init() tea.Cmd {
	return frame()
}

// Field exposes the hosted engine.
func (m Model) Field() *engine.Engine {
	return m.field
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func frame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.scheduler.Active() {
		return nil
	}
	m.ticking = true
	return frame()
}

func (m *Model) setFocus(focused bool) tea.Cmd {
	m.field.SetFocus(focused)
	if focused {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// syncSize keeps the engine's height in step with the rows the field draws:
// label, text and the bottom lines.
func (m *Model) syncSize() {
	current, _ := m.field.BottomLines()
	m.field.SetSize(m.width, 2+int(current+0.999))
	m.input.Width = max(1, m.textWidth()-1)
}

// syncScroll reports how far the text is scrolled: the part that no longer
// fits the text area.
func (m *Model) syncScroll() {
	overflow := measure.Terminal{}.TextWidth(m.input.Value(), 1) - m.textWidth() + 1
	m.field.SetScroll(max(0, overflow), 0)
}

func (m Model) textWidth() int {
	applied := m.field.AppliedPadding()
	return max(1, m.width-applied.Left-applied.Right)
}
