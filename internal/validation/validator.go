// Package validation holds the ordered validator chain run against a field's
// text and the stock validators.
package validation

// Chain runs validators in insertion order and stops at the first failure.
type Chain struct {
	validators []Validator
}

// Add appends v. Nil validators are ignored.
func (c *Chain) Add(v Validator) {
	if v == nil {
		return
	}
	c.validators = append(c.validators, v)
}

// Clear removes every validator.
func (c *Chain) Clear() {
	c.validators = nil
}

// Len is the number of validators in the chain.
func (c *Chain) Len() int {
	return len(c.validators)
}

// Validators returns a copy of the chain in insertion order.
func (c *Chain) Validators() []Validator {
	out := make([]Validator, len(c.validators))
	copy(out, c.validators)
	return out
}

// Run validates text. An empty chain is always valid.
func (c *Chain) Run(text string) Result {
	return Run(text, c.validators...)
}

// Run validates text against validators in order, stopping at the first one
// that rejects it.
func Run(text string, validators ...Validator) Result {
	empty := text == ""
	for i, v := range validators {
		if v == nil {
			continue
		}
		if !v.IsValid(text, empty) {
			return Result{Valid: false, Message: v.ErrorMessage(), Index: i}
		}
	}
	return Result{Valid: true, Index: -1}
}
