package domain

import (
	"fmt"
	"strings"
)

// Color identifies the side that plays a half-move.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Title returns the capitalized side name used in prompts.
func (c Color) Title() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// ParseColor accepts "white"/"w" and "black"/"b" in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return "", fmt.Errorf("invalid color %q: use white or black", s)
	}
}

// Result is the game termination marker written to the Result tag and after the move text.
type Result string

const (
	ResultWhiteWins  Result = "1-0"
	ResultBlackWins  Result = "0-1"
	ResultDraw       Result = "1/2-1/2"
	ResultInProgress Result = "*"
)

// Results lists the accepted result tokens in prompt order.
var Results = []Result{ResultWhiteWins, ResultBlackWins, ResultDraw, ResultInProgress}

// ParseResult accepts only the four result tokens.
func ParseResult(s string) (Result, error) {
	v := Result(strings.TrimSpace(s))
	for _, r := range Results {
		if v == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid result %q: must be one of 1-0, 0-1, 1/2-1/2, *", s)
}

// GameMetadata is the Seven Tag Roster. Only Result changes after move entry starts.
type GameMetadata struct {
	Event  string
	Site   string
	Date   string
	Round  string
	White  string
	Black  string
	Result Result
}

// NewGameMetadata returns metadata with the result left open.
func NewGameMetadata(event, site, date, round, white, black string) GameMetadata {
	return GameMetadata{
		Event:  event,
		Site:   site,
		Date:   date,
		Round:  round,
		White:  white,
		Black:  black,
		Result: ResultInProgress,
	}
}

// SetResult replaces the result token.
func (m *GameMetadata) SetResult(s string) error {
	r, err := ParseResult(s)
	if err != nil {
		return err
	}
	m.Result = r
	return nil
}

// ResultOrDefault treats an unset result as "*".
func (m GameMetadata) ResultOrDefault() Result {
	if m.Result == "" {
		return ResultInProgress
	}
	return m.Result
}

// MoveRecord is one numbered move pair. BlackSAN is empty only on the last record.
type MoveRecord struct {
	MoveNumber int
	WhiteSAN   string
	BlackSAN   string
}

// HasBlack reports whether black has answered in this record.
func (r MoveRecord) HasBlack() bool { return r.BlackSAN != "" }

// SAN returns the text stored for the given side.
func (r MoveRecord) SAN(c Color) string {
	if c == Black {
		return r.BlackSAN
	}
	return r.WhiteSAN
}

// PlannedMove is a half-move the rules oracle accepted but has not committed yet.
type PlannedMove struct {
	SAN string
	UCI string
}
