package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrMalformed indicates text that does not have the expected shape.
var ErrMalformed = errors.New("input: malformed")

// maxRowBytes caps a single row; puzzle rows are far shorter.
const maxRowBytes = 1 << 20

// ReadRows reads r to EOF and returns its lines.
func ReadRows(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRowBytes)

	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading rows: %w", err)
	}

	return rows, nil
}

// SplitRaw splits s on newlines. A single trailing newline does not
// produce an empty final row; blank rows inside s are preserved.
func SplitRaw(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	rows := strings.Split(s, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}

	return rows
}

// Blocks groups rows into runs separated by blank rows.
// Empty runs (leading, trailing or repeated blank rows) are dropped.
func Blocks(rows []string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, row := range rows {
		if strings.TrimSpace(row) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, row)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}

// Ints parses the whitespace separated integers in s.
// Values that do not fit in T are reported as malformed.
func Ints[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := parse[T](f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Labelled parses a row of the form "Label: 1 2 3".
// The label must match exactly; the colon is optional.
func Labelled[T constraints.Integer](row, label string) ([]T, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(row), label)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not start with %q", ErrMalformed, row, label)
	}
	rest = strings.TrimPrefix(rest, ":")

	return Ints[T](rest)
}

// PosInt parses a non-negative decimal integer without sign or leading
// zeros ("0" itself is allowed).
func PosInt(s string) (uint64, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, fmt.Errorf("%w: %q is not a positive integer", ErrMalformed, s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a positive integer", ErrMalformed, s)
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return v, nil
}

// Digits concatenates every decimal digit in s into one number, ignoring
// all other characters: "Time:  7  15" yields 715.
func Digits(s string) (uint64, error) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("%w: no digits in %q", ErrMalformed, s)
	}
	v, err := strconv.ParseUint(b.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return v, nil
}

// parse converts one field to T, rejecting values outside T's range.
func parse[T constraints.Integer](f string) (T, error) {
	var zero T
	signed := zero-1 < zero
	if signed {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil || int64(T(v)) != v {
			return zero, fmt.Errorf("%w: integer %q", ErrMalformed, f)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(f, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return zero, fmt.Errorf("%w: integer %q", ErrMalformed, f)
	}

	return T(v), nil
}
