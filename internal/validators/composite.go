// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Composite runs an ordered sequence of validators and returns the first
// error. Validators after the failing one are never invoked.
type Composite struct {
	validators []Validator
}

// NewComposite builds a [Composite] preserving the given order.
func NewComposite(validators ...Validator) *Composite {
	return &Composite{
		validators: append([]Validator(nil), validators...),
	}
}

// Len returns the number of validators in the composite.
func (c *Composite) Len() int {
	return len(c.validators)
}

// Validate implements [Validator]. An empty composite always passes.
func (c *Composite) Validate(ctx context.Context, input Input) error {
	for _, v := range c.validators {
		if err := v.Validate(ctx, input); err != nil {
			return err
		}
	}
	return nil
}
