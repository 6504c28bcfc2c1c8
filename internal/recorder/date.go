package recorder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
)

const pgnDateLayout = "2006.01.02"

// pgnDate also admits the "?" placeholders PGN uses for unknown parts.
var pgnDate = regexp.MustCompile(`^[0-9?]{4}\.[0-9?]{2}\.[0-9?]{2}$`)

// NormalizeDate returns s in YYYY.MM.DD form. Values already in that form are
// kept verbatim; anything else goes through dateparse.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if pgnDate.MatchString(s) {
		return s, nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Format(pgnDateLayout), nil
}
