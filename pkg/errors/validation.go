package errors

import (
	"strings"
	"unicode"
)

// MaxBoardText is the largest board text accepted from users.
const MaxBoardText = 4096

// MaxBoardSize is the largest placement board the solver accepts.
const MaxBoardSize = 64

// ValidateBoardText performs cheap sanity checks on raw board text before it
// is parsed. Structural checks (shape, tile set) belong to the puzzle package.
//
// The validation rules are:
//   - Not empty or whitespace only
//   - At most MaxBoardText bytes
//   - Only digits and whitespace
func ValidateBoardText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidBoard, "board text cannot be empty")
	}

	if len(text) > MaxBoardText {
		return New(ErrCodeInvalidBoard, "board text too long (max %d bytes)", MaxBoardText)
	}

	for _, r := range text {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return New(ErrCodeInvalidBoard, "board text contains invalid character %q", r)
		}
	}

	return nil
}

// ValidateBoardSize checks a placement board size.
func ValidateBoardSize(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidPlacement, "board size must be positive, got %d", n)
	}
	if n > MaxBoardSize {
		return New(ErrCodeInvalidPlacement, "board size too large (max %d), got %d", MaxBoardSize, n)
	}
	return nil
}
