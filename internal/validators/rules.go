// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
)

type ruleKind int

const (
	ruleRequired ruleKind = iota
	ruleEqual
	ruleEmail
)

// Rule is a single atomic validation check. It is a tagged variant: the kind
// selects which of the fields below are meaningful, and [Rule.Validate]
// dispatches on it. Rules are immutable values and safe for concurrent use.
type Rule struct {
	kind ruleKind

	// field is the field the rule checks and reports errors for.
	field string

	// other is the field compared against (equal rule only).
	other string

	// checker is the email syntax capability (email rule only).
	checker EmailChecker
}

// Required returns a rule failing with [MissingField] when input[field] is
// absent or empty.
func Required(field string) Rule {
	return Rule{kind: ruleRequired, field: field}
}

// Equal returns a rule failing with [InvalidField] on field when
// input[field] differs from input[other].
func Equal(field, other string) Rule {
	return Rule{kind: ruleEqual, field: field, other: other}
}

// Email returns a rule failing with [InvalidField] when checker reports
// input[field] as not a valid email. A checker failure is returned as is,
// wrapped with [ErrEmailCheckFailed].
func Email(field string, checker EmailChecker) Rule {
	return Rule{kind: ruleEmail, field: field, checker: checker}
}

// Field returns the name of the field the rule reports errors for.
func (r Rule) Field() string {
	return r.field
}

// Validate implements [Validator].
func (r Rule) Validate(_ context.Context, input Input) error {
	switch r.kind {
	case ruleRequired:
		if input[r.field] == "" {
			return NewMissingFieldError(r.field)
		}
		return nil

	case ruleEqual:
		if input[r.field] != input[r.other] {
			return NewInvalidFieldError(r.field, fmt.Sprintf("%s must equal %s", r.field, r.other))
		}
		return nil

	case ruleEmail:
		valid, err := r.checker.IsValid(input[r.field])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEmailCheckFailed, err)
		}
		if !valid {
			return NewInvalidFieldError(r.field, "")
		}
		return nil
	}

	return fmt.Errorf("unknown rule kind %d", r.kind)
}
