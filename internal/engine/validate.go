package engine

import "github.com/alexisbeaulieu97/materialfield/internal/validation"

// AddValidator appends v to the chain.
func (e *Engine) AddValidator(v validation.Validator) {
	e.chain.Add(v)
}

// ClearValidators empties the chain. The current error stays until the next
// edit or validation.
func (e *Engine) ClearValidators() {
	e.chain.Clear()
}

// Validate runs the chain against the current text and shows the first
// failing validator's message. An empty chain is valid and leaves the error
// alone.
func (e *Engine) Validate() bool {
	if e.chain.Len() == 0 {
		return true
	}
	valid := e.runChain()
	e.adjustBottom()
	e.host.Invalidate()
	return valid
}

// ValidateWith checks the text against a single validator outside the
// chain. Only a failure changes the shown error.
func (e *Engine) ValidateWith(v validation.Validator) bool {
	if v == nil {
		return true
	}
	valid := v.IsValid(e.state.Text, e.state.Empty())
	if !valid {
		e.setValidationError(v.ErrorMessage(), true)
		e.adjustBottom()
	}
	e.host.Invalidate()
	return valid
}

// SetError shows msg until the next edit. It takes precedence over any
// validation error. An empty msg removes it.
func (e *Engine) SetError(msg string) {
	if msg == e.state.ManualError {
		return
	}
	e.log.Transition("manual_error", e.state.ManualError, msg)
	e.state.ManualError = msg
	e.adjustBottom()
	e.host.Invalidate()
}

// ClearError removes both the manual and the validation error.
func (e *Engine) ClearError() {
	if !e.state.HasError() {
		return
	}
	e.state.ManualError = ""
	e.setValidationError("", false)
	e.adjustBottom()
	e.host.Invalidate()
}

func (e *Engine) runChain() bool {
	if e.chain.Len() == 0 {
		return true
	}
	res := e.chain.Run(e.state.Text)
	e.setValidationError(res.Message, !res.Valid)
	return res.Valid
}

func (e *Engine) setValidationError(msg string, failed bool) {
	e.state.ValidationFailed = failed
	if msg == e.state.ValidationError {
		return
	}
	e.log.Transition("validation_error", e.state.ValidationError, msg)
	e.state.ValidationError = msg
}
