package validation

import (
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// RuneLength counts Unicode code points. It is the default LengthChecker.
var RuneLength LengthChecker = LengthFunc(utf8.RuneCountInString)

type funcValidator struct {
	message string
	fn      func(text string, isEmpty bool) bool
}

// Func wraps fn as a Validator reporting message on failure.
func Func(message string, fn func(text string, isEmpty bool) bool) Validator {
	return &funcValidator{message: message, fn: fn}
}

func (v *funcValidator) IsValid(text string, isEmpty bool) bool {
	return v.fn(text, isEmpty)
}

func (v *funcValidator) ErrorMessage() string {
	return v.message
}

// RegexpValidator accepts text that the whole pattern matches.
type RegexpValidator struct {
	message string
	pattern *regexp.Regexp
}

// Regexp compiles pattern anchored at both ends.
func Regexp(message, pattern string) (*RegexpValidator, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &RegexpValidator{message: message, pattern: re}, nil
}

// MustRegexp is Regexp that panics on an invalid pattern.
func MustRegexp(message, pattern string) *RegexpValidator {
	v, err := Regexp(message, pattern)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *RegexpValidator) IsValid(text string, _ bool) bool {
	return v.pattern.MatchString(text)
}

func (v *RegexpValidator) ErrorMessage() string {
	return v.message
}

var (
	tagValidatorOnce sync.Once
	tagValidator     *validator.Validate
)

func tags() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = validator.New()
	})
	return tagValidator
}

// TagValidator checks text against a validator tag expression such as
// "email" or "alphanum,min=3".
type TagValidator struct {
	message string
	tag     string
}

// Tag builds a TagValidator. The expression is checked up front so an unknown
// tag is an error here instead of a panic while typing.
func Tag(message, tag string) (v *TagValidator, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("invalid validation tag %q: %v", tag, r)
		}
	}()
	// The outcome is irrelevant, only whether the tag parses.
	_ = tags().Var("", tag)
	return &TagValidator{message: message, tag: tag}, nil
}

func (v *TagValidator) IsValid(text string, _ bool) bool {
	return tags().Var(text, v.tag) == nil
}

func (v *TagValidator) ErrorMessage() string {
	return v.message
}

// Required rejects an empty field.
func Required(message string) Validator {
	return Func(message, func(_ string, isEmpty bool) bool {
		return !isEmpty
	})
}

// LengthValidator bounds the counted length of the text. A bound of zero or
// less is unset.
type LengthValidator struct {
	message string
	min     int
	max     int
	checker LengthChecker
}

// Length builds a LengthValidator. A nil checker counts runes.
func Length(message string, minChars, maxChars int, checker LengthChecker) *LengthValidator {
	if checker == nil {
		checker = RuneLength
	}
	return &LengthValidator{message: message, min: minChars, max: maxChars, checker: checker}
}

func (v *LengthValidator) IsValid(text string, _ bool) bool {
	n := v.checker.Length(text)
	if v.min > 0 && n < v.min {
		return false
	}
	return v.max <= 0 || n <= v.max
}

func (v *LengthValidator) ErrorMessage() string {
	return v.message
}
