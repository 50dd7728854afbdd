package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"recipeview/internal/model"
)

// StdinPath selects standard input as the recipe source.
const StdinPath = "-"

// ErrSourceTooLarge is returned when a recipe source exceeds maxSourceSize.
var ErrSourceTooLarge = errors.New("recipe source too large")

// maxSourceSize caps how much of a recipe source is read. Swapped out in tests.
var maxSourceSize int64 = 16 * 1024 * 1024

// stdin is swapped out in tests.
var stdin io.Reader = os.Stdin

// ReadSource reads the whole recipe source. A leading ~/ is expanded.
func ReadSource(path string) ([]byte, error) {
	var r io.Reader
	if path == StdinPath {
		r = stdin
	} else {
		f, err := os.Open(model.ExpandTilde(path))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSourceSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSourceSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrSourceTooLarge, maxSourceSize)
	}
	return data, nil
}
