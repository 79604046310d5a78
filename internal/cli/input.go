package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle/superqueens"
)

// readBoard returns the board text from a file argument, or from stdin when
// the argument is "-" or absent.
func readBoard(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(io.LimitReader(stdin, errors.MaxBoardText+1))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read board: %w", err)
	}
	return string(data), nil
}

// parsePlacement reads "col,col,..." as the columns of rows 0, 1, ...
// An empty string places nothing.
func parsePlacement(s string) ([]superqueens.Square, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	placed := make([]superqueens.Square, len(fields))
	for row, f := range fields {
		col, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidPlacement, "--place: %q is not a column number", f)
		}
		placed[row] = superqueens.Square{Row: row, Col: col}
	}
	return placed, nil
}
