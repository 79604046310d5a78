package errors

import (
	"strings"
	"testing"
)

func TestValidateBoardText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid board", "1 2 3 4\n5 6 7 8\n9 10 11 12\n13 14 15 0", false},
		{"valid with trailing newline", "1 2\n3 0\n", false},
		{"valid tabs", "1\t2\n3\t0", false},

		{"empty", "", true},
		{"whitespace only", " \n\t ", true},
		{"too long", strings.Repeat("1 ", MaxBoardText), true},
		{"letters", "1 2 a 4", true},
		{"negative sign", "1 -2 3", true},
		{"comma separated", "1,2,3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoardText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBoardText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidBoard) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidBoard)
			}
		})
	}
}

func TestValidateBoardSize(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"one", 1, false},
		{"eight", 8, false},
		{"max", MaxBoardSize, false},

		{"zero", 0, true},
		{"negative", -3, true},
		{"too large", MaxBoardSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoardSize(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBoardSize(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPlacement) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPlacement)
			}
		})
	}
}
