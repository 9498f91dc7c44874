package model

import "unicode/utf8"

// FieldState is the mutable state owned by the engine. It is only written from
// the engine's event entry points.
type FieldState struct {
	Text       string
	TextLength int
	Focused    bool
	Enabled    bool

	// ManualError is set through SetError and wins over ValidationError.
	ManualError     string
	ValidationError string
	// ValidationFailed is set by a failing validator even when its message
	// is empty.
	ValidationFailed bool
	HelperText       string

	CurrentBottomLines float64
	TargetBottomLines  int

	LabelFraction float64
	FocusFraction float64

	CharactersCountValid bool
	FirstShown           bool

	Width   int
	Height  int
	ScrollX int
	ScrollY int
}

// NewFieldState returns the state of an empty, enabled, unfocused field.
func NewFieldState() FieldState {
	return FieldState{Enabled: true, CharactersCountValid: true}
}

// Empty reports whether the field currently holds no text.
func (s FieldState) Empty() bool {
	return s.Text == ""
}

// ErrorText returns the error shown to the user; a manual error takes precedence.
func (s FieldState) ErrorText() string {
	if s.ManualError != "" {
		return s.ManualError
	}
	return s.ValidationError
}

// HasError reports whether any error is currently set. A failed validation
// counts even when its message is empty.
func (s FieldState) HasError() bool {
	return s.ErrorText() != "" || s.ValidationFailed
}

// HasHelper reports whether helper text is set.
func (s FieldState) HasHelper() bool {
	return s.HelperText != ""
}

// HelperVisible reports whether the helper text is drawn: it needs to be set
// and either always shown or the field focused.
func (s FieldState) HelperVisible(alwaysShown bool) bool {
	return s.HasHelper() && (alwaysShown || s.Focused)
}

// InternalValid is the validity used for the underline, icons and counter.
func (s FieldState) InternalValid() bool {
	return !s.HasError() && s.CharactersCountValid
}

// WithText sets the text and its rune length.
func (s FieldState) WithText(text string) FieldState {
	s.Text = text
	s.TextLength = utf8.RuneCountInString(text)
	return s
}

// PaddingBox is the extra padding the decorations need around the text.
type PaddingBox struct {
	Top    int `yaml:"top" json:"top"`
	Bottom int `yaml:"bottom" json:"bottom"`
	Left   int `yaml:"left" json:"left"`
	Right  int `yaml:"right" json:"right"`
}

// Add returns the sum of the box and the insets.
func (p PaddingBox) Add(in Insets) PaddingBox {
	return PaddingBox{
		Top:    p.Top + in.Top,
		Bottom: p.Bottom + in.Bottom,
		Left:   p.Left + in.Left,
		Right:  p.Right + in.Right,
	}
}
