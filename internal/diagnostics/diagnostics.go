// Package diagnostics defines the error values a walk reports back to
// its host: a small fixed code enum, a source position, and a message.
package diagnostics

import (
	"fmt"

	"github.com/riseshia/rbtypegraph/internal/token"
)

// Code identifies a diagnostic's category, independent of its message
// text, so hosts can filter or suppress by code.
type Code string

const (
	// ErrW001 marks an attr_* hook call with no symbol arguments, e.g.
	// `attr_reader` with nothing after it.
	ErrW001 Code = "W001"
	// ErrW002 marks a constant path segment that never resolved to a
	// known class or module by the end of the walk.
	ErrW002 Code = "W002"
	// ErrW003 marks a multiple assignment whose target count does not
	// match a literal-array RHS's element count.
	ErrW003 Code = "W003"
)

// DiagnosticError is one fatal-or-warning-level signal raised while
// walking a file. It implements error.
type DiagnosticError struct {
	Code    Code
	Token   token.Token
	Message string
}

func (e *DiagnosticError) Error() string {
	pos := e.Token.Position()
	return fmt.Sprintf("%s:%d:%d: %s", e.Code, pos.Line, pos.Column, e.Message)
}

// NewError builds a DiagnosticError at tok with the given code and
// message.
func NewError(code Code, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}
