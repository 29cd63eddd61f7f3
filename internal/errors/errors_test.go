package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrOffBoard", ErrOffBoard},
		{"ErrOccupiedSquare", ErrOccupiedSquare},
		{"ErrInvalidDestination", ErrInvalidDestination},
		{"ErrNotation", ErrNotation},
		{"ErrInvalidSetup", ErrInvalidSetup},
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrWrongColour", ErrWrongColour},
		{"ErrNoMoreMoves", ErrNoMoreMoves},
		{"ErrInvalidConfig", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("setting up board: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrInvalidDestination,
				Piece: "White Rook",
				From:  "A1",
				To:    "B2",
			},
			contains: []string{"White Rook", "from A1", "to B2", "invalid destination"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrOffBoard},
			contains: []string{"not on the board"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrOffBoard, Piece: "Black Pawn"}
	wrapped := fmt.Errorf("applying move: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Piece != "Black Pawn" {
		t.Errorf("extracted.Piece = %q, want %q", extracted.Piece, "Black Pawn")
	}
	if !errors.Is(wrapped, ErrOffBoard) {
		t.Error("errors.Is(wrapped, ErrOffBoard) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrNotation,
		Input:    "Zf3",
		Column:   1,
		Expected: "piece letter or file",
		Got:      "'Z'",
	}

	msg := err.Error()
	for _, s := range []string{`"Zf3":1`, "expected piece letter or file", "got 'Z'", "unparsable notation"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrNotation) {
		t.Error("errors.Is(parseErr, ErrNotation) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	wrapped := Wrapf(ErrInvalidFEN, "field %d", 2)
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "field 2") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

func TestIsAs(t *testing.T) {
	err := Wrap(&MoveError{Err: ErrWrongColour, Piece: "Black Queen"}, "white to move")
	if !Is(err, ErrWrongColour) {
		t.Error("Is should see through Wrap and MoveError")
	}
	var moveErr *MoveError
	if !As(err, &moveErr) || moveErr.Piece != "Black Queen" {
		t.Errorf("As = %v; want the MoveError", moveErr)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
