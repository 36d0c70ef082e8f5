package diagnostics

import (
	"testing"

	"github.com/riseshia/rbtypegraph/internal/token"
)

func TestNewErrorBuildsFromCodeTokenAndMessage(t *testing.T) {
	tok := token.Token{Lexeme: "Foo", Line: 3, Column: 5}
	err := NewError(ErrW002, tok, "constant Foo never resolved")
	if err.Code != ErrW002 {
		t.Errorf("Code = %v, want ErrW002", err.Code)
	}
	if err.Token != tok {
		t.Errorf("Token = %v, want %v", err.Token, tok)
	}
}

func TestDiagnosticErrorStringIncludesCodePositionAndMessage(t *testing.T) {
	tok := token.Token{Line: 3, Column: 5}
	err := NewError(ErrW001, tok, "attr_reader with no symbol arguments")
	want := "W001:3:5: attr_reader with no symbol arguments"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDiagnosticErrorImplementsErrorInterface(t *testing.T) {
	var _ error = NewError(ErrW003, token.Token{}, "mismatch")
}
