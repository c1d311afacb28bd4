package registry

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidLabel rejects a name, tag or group the CLI could not address.
var ErrInvalidLabel = errors.New("invalid label")

const maxLabelLen = 64

type labelKind string

const (
	kindName  labelKind = "name"
	kindTag   labelKind = "tag"
	kindGroup labelKind = "group"
)

// checkLabel trims raw and validates it. Labels travel through
// comma-separated flags and pid@create_time selectors, so ',', '@' and
// whitespace are refused. A name made only of digits would read as an id.
func checkLabel(kind labelKind, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	if n := utf8.RuneCountInString(s); n > maxLabelLen {
		return "", fmt.Errorf("%w: %s %q has %d characters, limit is %d", ErrInvalidLabel, kind, s, n, maxLabelLen)
	}
	for _, r := range s {
		if !labelRune(r) {
			return "", fmt.Errorf("%w: %s %q contains %q", ErrInvalidLabel, kind, s, r)
		}
	}
	if kind == kindName && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		return "", fmt.Errorf("%w: name %q is numeric and would shadow an id", ErrInvalidLabel, s)
	}
	return s, nil
}

// checkLabels normalizes a label list and validates every element.
func checkLabels(kind labelKind, raw []string) ([]string, error) {
	out := norm(raw)
	for _, l := range out {
		if _, err := checkLabel(kind, l); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func labelRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return strings.ContainsRune("-_.:/", r)
}
