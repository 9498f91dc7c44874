package validation

// Validator checks the field text. isEmpty is passed alongside the text so
// validators can treat an empty field specially without re-checking.
type Validator interface {
	IsValid(text string, isEmpty bool) bool
	ErrorMessage() string
}

// Result captures the outcome of running a chain.
type Result struct {
	Valid bool
	// Message is the failing validator's error message, empty when valid.
	Message string
	// Index is the position of the failing validator, -1 when valid.
	Index int
}

// LengthChecker counts the characters the counter and length validators see.
type LengthChecker interface {
	Length(text string) int
}

// LengthFunc adapts a function to LengthChecker.
type LengthFunc func(text string) int

func (f LengthFunc) Length(text string) int {
	return f(text)
}
