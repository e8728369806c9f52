package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrParse is returned for text that cannot be turned into kata arguments.
var ErrParse = errors.New("parse failure")

// ErrEmptyInput is returned when there is nothing to parse.
var ErrEmptyInput = fmt.Errorf("%w: empty input", ErrParse)

// ReadLine returns the first line of r without its line terminator.
// A reader that ends before producing any data yields ErrEmptyInput.
func ReadLine(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: reading input: %v", ErrParse, err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrEmptyInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseNumber parses a base-10 integer, ignoring surrounding whitespace.
func ParseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrParse, s)
	}
	return n, nil
}

// parseInts parses every field with ParseNumber.
func parseInts(parts []string) ([]int, error) {
	values := make([]int, 0, len(parts))
	for _, f := range parts {
		n, err := ParseNumber(f)
		if err != nil {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}

// fields splits s on whitespace and commas.
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ParseStones parses "TOTAL STEP..." into the total number of stones and the
// step sizes. Values may be separated by whitespace or commas.
func ParseStones(s string) (int, []int, error) {
	parts := fields(s)
	if len(parts) == 0 {
		return 0, nil, ErrEmptyInput
	}
	values, err := parseInts(parts)
	if err != nil {
		return 0, nil, err
	}
	return values[0], values[1:], nil
}
