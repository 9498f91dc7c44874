package config

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/materialfield/internal/colors"
	"github.com/alexisbeaulieu97/materialfield/internal/model"
	"github.com/alexisbeaulieu97/materialfield/internal/validation"
	fielderrors "github.com/alexisbeaulieu97/materialfield/pkg/errors"
)

// ToFieldConfig overlays the document on the default configuration. Zero
// values keep the default.
func ToFieldConfig(doc *Document) (model.FieldConfig, error) {
	cfg := model.DefaultFieldConfig()
	if doc == nil {
		return cfg, nil
	}

	if err := applyColors(&cfg, doc.Colors); err != nil {
		return cfg, err
	}

	switch doc.Label.Mode {
	case "normal":
		cfg.FloatingLabel = model.LabelNormal
	case "highlight":
		cfg.FloatingLabel = model.LabelHighlight
	default:
		cfg.FloatingLabel = model.LabelNone
	}
	cfg.FloatingLabelText = doc.Label.Text
	setInt(&cfg.FloatingLabelTextSize, doc.Label.TextSize)
	setInt(&cfg.FloatingLabelPadding, doc.Label.Padding)
	if doc.Label.Animating != nil {
		cfg.FloatingLabelAnimating = *doc.Label.Animating
	}
	cfg.FloatingLabelAlwaysShown = doc.Label.AlwaysShown
	setDuration(&cfg.LabelDuration, doc.Label.Duration)
	setDuration(&cfg.FocusDuration, doc.Label.FocusDuration)

	setInt(&cfg.BottomTextSize, doc.Bottom.TextSize)
	setInt(&cfg.BottomSpacing, doc.Bottom.Spacing)
	setInt(&cfg.BottomEllipsisSize, doc.Bottom.EllipsisSize)
	setInt(&cfg.BottomTextInset, doc.Bottom.TextInset)
	cfg.MinBottomTextLines = doc.Bottom.MinLines
	cfg.HelperTextAlwaysShown = doc.Bottom.HelperAlwaysShown
	cfg.SingleLineEllipsis = doc.Bottom.SingleLineEllipsis
	cfg.HideUnderline = doc.Bottom.HideUnderline
	setDuration(&cfg.BottomLinesDuration, doc.Bottom.Duration)

	cfg.MinCharacters = doc.Characters.Min
	cfg.MaxCharacters = doc.Characters.Max
	if doc.Characters.CheckAtBeginning != nil {
		cfg.CheckCharactersCountAtBeginning = *doc.Characters.CheckAtBeginning
	}

	setInt(&cfg.IconSize, doc.Icons.Size)
	setInt(&cfg.IconOuterWidth, doc.Icons.OuterWidth)
	setInt(&cfg.IconOuterHeight, doc.Icons.OuterHeight)
	setInt(&cfg.IconPadding, doc.Icons.Padding)
	cfg.ShowClearButton = doc.Icons.ClearButton

	cfg.AutoValidate = doc.Behaviour.AutoValidate
	cfg.ValidateOnFocusLost = doc.Behaviour.ValidateOnFocusLost
	if doc.Behaviour.Easing != "" {
		cfg.Easing = model.Easing(doc.Behaviour.Easing)
	}

	cfg.RTL = doc.Layout.RTL
	switch doc.Layout.Gravity {
	case "end":
		cfg.Gravity = model.GravityEnd
	case "center":
		cfg.Gravity = model.GravityCenter
	default:
		cfg.Gravity = model.GravityStart
	}
	cfg.InnerPadding = doc.Layout.InnerPadding

	return cfg, nil
}

func applyColors(cfg *model.FieldConfig, c Colors) error {
	required := []struct {
		field string
		value string
		dst   *colors.Color
	}{
		{"colors.base", c.Base, &cfg.BaseColor},
		{"colors.primary", c.Primary, &cfg.PrimaryColor},
		{"colors.error", c.Error, &cfg.ErrorColor},
	}
	for _, r := range required {
		if r.value == "" {
			continue
		}
		parsed, err := colors.Parse(r.value)
		if err != nil {
			return fielderrors.NewValidationError(r.field, err.Error(), err)
		}
		*r.dst = parsed
	}

	optional := []struct {
		field string
		value string
		dst   **colors.Color
	}{
		{"colors.helper", c.Helper, &cfg.HelperTextColor},
		{"colors.label", c.Label, &cfg.FloatingLabelTextColor},
		{"colors.underline", c.Underline, &cfg.UnderlineColor},
	}
	for _, o := range optional {
		if o.value == "" {
			continue
		}
		parsed, err := colors.Parse(o.value)
		if err != nil {
			return fielderrors.NewValidationError(o.field, err.Error(), err)
		}
		*o.dst = &parsed
	}
	return nil
}

// BuildValidators turns the document's validator list into a chain in
// document order.
func BuildValidators(doc *Document) ([]validation.Validator, error) {
	if doc == nil {
		return nil, nil
	}
	out := make([]validation.Validator, 0, len(doc.Validators))
	for i, spec := range doc.Validators {
		v, err := buildValidator(spec)
		if err != nil {
			return nil, fielderrors.NewValidationError(fieldForValidator(i, spec.Type), err.Error(), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func buildValidator(spec ValidatorSpec) (validation.Validator, error) {
	switch spec.Type {
	case "regexp":
		return validation.Regexp(spec.Message, spec.Pattern)
	case "tag":
		return validation.Tag(spec.Message, spec.Tag)
	case "required":
		return validation.Required(spec.Message), nil
	case "length":
		return validation.Length(spec.Message, spec.Min, spec.Max, nil), nil
	default:
		return nil, fmt.Errorf("unknown validator type %q", spec.Type)
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v Duration) {
	if v > 0 {
		*dst = time.Duration(v)
	}
}
