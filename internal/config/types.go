package config

import (
	"time"

	"github.com/alexisbeaulieu97/materialfield/internal/model"
)

// Document is one field description as written in YAML or TOML.
type Document struct {
	Version    string          `yaml:"version" toml:"version" validate:"required,semver"`
	Name       string          `yaml:"name" toml:"name" validate:"required"`
	Colors     Colors          `yaml:"colors" toml:"colors"`
	Label      Label           `yaml:"label" toml:"label"`
	Bottom     Bottom          `yaml:"bottom" toml:"bottom"`
	Characters Characters      `yaml:"characters" toml:"characters"`
	Icons      Icons           `yaml:"icons" toml:"icons"`
	Behaviour  Behaviour       `yaml:"behaviour" toml:"behaviour"`
	Layout     Layout          `yaml:"layout" toml:"layout"`
	Validators []ValidatorSpec `yaml:"validators" toml:"validators" validate:"dive"`
	Field      Field           `yaml:"field" toml:"field"`
}

// Colors are #rgb, #rrggbb or #aarrggbb strings; empty keeps the default.
type Colors struct {
	Base      string `yaml:"base" toml:"base" validate:"omitempty,argbcolor"`
	Primary   string `yaml:"primary" toml:"primary" validate:"omitempty,argbcolor"`
	Error     string `yaml:"error" toml:"error" validate:"omitempty,argbcolor"`
	Helper    string `yaml:"helper" toml:"helper" validate:"omitempty,argbcolor"`
	Label     string `yaml:"label" toml:"label" validate:"omitempty,argbcolor"`
	Underline string `yaml:"underline" toml:"underline" validate:"omitempty,argbcolor"`
}

// Label configures the floating label.
type Label struct {
	Mode          string   `yaml:"mode" toml:"mode" validate:"omitempty,oneof=none normal highlight"`
	Text          string   `yaml:"text" toml:"text"`
	TextSize      int      `yaml:"text_size" toml:"text_size" validate:"gte=0"`
	Padding       int      `yaml:"padding" toml:"padding" validate:"gte=0"`
	Animating     *bool    `yaml:"animating" toml:"animating,omitempty"`
	AlwaysShown   bool     `yaml:"always_shown" toml:"always_shown"`
	Duration      Duration `yaml:"duration" toml:"duration" validate:"gte=0"`
	FocusDuration Duration `yaml:"focus_duration" toml:"focus_duration" validate:"gte=0"`
}

// Bottom configures the strip under the field.
type Bottom struct {
	TextSize           int      `yaml:"text_size" toml:"text_size" validate:"gte=0"`
	Spacing            int      `yaml:"spacing" toml:"spacing" validate:"gte=0"`
	EllipsisSize       int      `yaml:"ellipsis_size" toml:"ellipsis_size" validate:"gte=0"`
	TextInset          int      `yaml:"text_inset" toml:"text_inset" validate:"gte=0"`
	MinLines           int      `yaml:"min_lines" toml:"min_lines" validate:"gte=0"`
	HelperAlwaysShown  bool     `yaml:"helper_always_shown" toml:"helper_always_shown"`
	SingleLineEllipsis bool     `yaml:"single_line_ellipsis" toml:"single_line_ellipsis"`
	HideUnderline      bool     `yaml:"hide_underline" toml:"hide_underline"`
	Duration           Duration `yaml:"duration" toml:"duration" validate:"gte=0"`
}

// Characters configures the counter. Zero is no limit.
type Characters struct {
	Min              int   `yaml:"min" toml:"min" validate:"gte=0"`
	Max              int   `yaml:"max" toml:"max" validate:"omitempty,gtefield=Min"`
	CheckAtBeginning *bool `yaml:"check_at_beginning" toml:"check_at_beginning,omitempty"`
}

// Icons holds icon file paths, relative to the document, and icon geometry.
type Icons struct {
	Left        string `yaml:"left" toml:"left"`
	Right       string `yaml:"right" toml:"right"`
	Clear       string `yaml:"clear" toml:"clear"`
	Size        int    `yaml:"size" toml:"size" validate:"gte=0"`
	OuterWidth  int    `yaml:"outer_width" toml:"outer_width" validate:"gte=0"`
	OuterHeight int    `yaml:"outer_height" toml:"outer_height" validate:"gte=0"`
	Padding     int    `yaml:"padding" toml:"padding" validate:"gte=0"`
	ClearButton bool   `yaml:"clear_button" toml:"clear_button"`
}

// Behaviour configures validation timing and animation curves.
type Behaviour struct {
	AutoValidate        bool   `yaml:"auto_validate" toml:"auto_validate"`
	ValidateOnFocusLost bool   `yaml:"validate_on_focus_lost" toml:"validate_on_focus_lost"`
	Easing              string `yaml:"easing" toml:"easing" validate:"omitempty,easing"`
}

// Layout configures direction, gravity and the host's own padding.
type Layout struct {
	RTL          bool         `yaml:"rtl" toml:"rtl"`
	Gravity      string       `yaml:"gravity" toml:"gravity" validate:"omitempty,oneof=start end center"`
	InnerPadding model.Insets `yaml:"inner_padding" toml:"inner_padding"`
}

// ValidatorSpec describes one entry of the validator chain.
type ValidatorSpec struct {
	Type    string `yaml:"type" toml:"type" validate:"required,oneof=regexp tag required length"`
	Message string `yaml:"message" toml:"message" validate:"required"`
	Pattern string `yaml:"pattern" toml:"pattern" validate:"required_if=Type regexp"`
	Tag     string `yaml:"tag" toml:"tag" validate:"required_if=Type tag"`
	Min     int    `yaml:"min" toml:"min" validate:"gte=0"`
	Max     int    `yaml:"max" toml:"max" validate:"gte=0"`
}

// Field is the state the field starts in.
type Field struct {
	Text       string `yaml:"text" toml:"text"`
	HelperText string `yaml:"helper_text" toml:"helper_text"`
	Error      string `yaml:"error" toml:"error"`
	Focused    bool   `yaml:"focused" toml:"focused"`
	Disabled   bool   `yaml:"disabled" toml:"disabled"`
	Width      int    `yaml:"width" toml:"width" validate:"gte=0"`
	Height     int    `yaml:"height" toml:"height" validate:"gte=0"`
}

// Duration is a time.Duration written as "300ms".
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText writes the Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
