// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kombi

import (
	"fmt"
	"strings"
)

// Error is the structured failure record carried by an erroring State.
//
// Errors compose: an outer combinator that gives up re-stamps the inner
// error with its own name, keeping the innermost Message and Index, and
// links the inner record through Cause. Following Cause from the outermost
// record reconstructs which combinators gave up and why.
type Error struct {
	// Message describes what was expected at Index.
	Message string

	// Index is the input position the failure refers to.
	Index int

	// Combinator names the combinator or matcher that raised or
	// re-wrapped the error.
	Combinator string

	// Matched counts the successful matches achieved before failing,
	// for combinators that track them.
	Matched int

	// Required is the number of matches the combinator needed.
	// Zero when the combinator does not count matches.
	Required int

	// Cause is the inner error this record wraps, or nil.
	Cause *Error

	// Alternatives holds the failures of every branch tried by Choice.
	Alternatives []*Error
}

// NewError creates an error raised by combinator at index.
func NewError(combinator string, index int, message string) *Error {
	return &Error{Message: message, Index: index, Combinator: combinator}
}

// NewErrorf is NewError with a formatted message.
func NewErrorf(combinator string, index int, format string, args ...any) *Error {
	return NewError(combinator, index, fmt.Sprintf(format, args...))
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Combinator != "" {
		b.WriteString(e.Combinator)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	fmt.Fprintf(&b, " at index %d", e.Index)
	if e.Required > 0 {
		fmt.Fprintf(&b, " (matched %d of %d)", e.Matched, e.Required)
	}
	return b.String()
}

// Unwrap exposes the wrapped cause and the choice alternatives to
// errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	for _, alt := range e.Alternatives {
		errs = append(errs, alt)
	}
	return errs
}

// Root returns the innermost error of the Cause chain.
func (e *Error) Root() *Error {
	for e.Cause != nil {
		e = e.Cause
	}
	return e
}

// Trail lists the combinator names from the outermost record inward.
func (e *Error) Trail() []string {
	var trail []string
	for cur := e; cur != nil; cur = cur.Cause {
		trail = append(trail, cur.Combinator)
	}
	return trail
}

// Wrap returns an error mapping that re-stamps an error with combinator.
// The message and index of the inner error are preserved and the inner
// record becomes the Cause. Intended for use with Parser.MapErr.
func Wrap(combinator string) func(*Error) *Error {
	return func(e *Error) *Error {
		return &Error{
			Message:    e.Message,
			Index:      e.Index,
			Combinator: combinator,
			Matched:    e.Matched,
			Required:   e.Required,
			Cause:      e,
		}
	}
}
