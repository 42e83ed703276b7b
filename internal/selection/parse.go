package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"isorip/internal/disc"
)

var (
	// ErrMalformed marks input with a piece that is not an integer.
	ErrMalformed = errors.New("malformed selection")
	// ErrUnknown marks input naming an index that was not discovered.
	ErrUnknown = errors.New("unknown selection")
)

// Error describes rejected operator input. It matches ErrMalformed or
// ErrUnknown with errors.Is.
type Error struct {
	Kind    error
	Input   string
	Invalid []int
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknown:
		return fmt.Sprintf("your choice(s) %v include invalid selections (%q); try again", e.Invalid, e.Input)
	default:
		return fmt.Sprintf("your selection (%q) was not understood; separate numbers with a comma, like so: 1,2,3", e.Input)
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Parse validates input against catalog and returns the indices in the order
// entered. Duplicates are kept. A single number is handled like a list of one.
func Parse(input string, catalog disc.Catalog) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	pieces := strings.Split(trimmed, ",")
	selections := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		value, err := strconv.Atoi(strings.TrimSpace(piece))
		if err != nil {
			return nil, &Error{Kind: ErrMalformed, Input: trimmed, Err: err}
		}
		selections = append(selections, value)
	}

	var invalid []int
	for _, index := range selections {
		if _, ok := catalog.Lookup(index); !ok {
			invalid = append(invalid, index)
		}
	}
	if len(invalid) > 0 {
		return nil, &Error{Kind: ErrUnknown, Input: trimmed, Invalid: invalid}
	}
	return selections, nil
}
