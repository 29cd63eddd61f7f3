package testutil

import (
	"testing"
)

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"plain string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"move %d of %s", 3, "white"}, "move 3 of white"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			AssertEqual(t, formatMessage(tt.args...), tt.want)
		})
	}
}

func TestAssertionsPass(t *testing.T) {
	AssertEqual(t, []int{1, 2}, []int{1, 2})
	AssertSameStrings(t, []string{"B", "A"}, []string{"A", "B"})
	AssertSameStrings(t, nil, []string{})
	AssertNoError(t, nil)
	AssertTrue(t, true)
	AssertFalse(t, false)
}
