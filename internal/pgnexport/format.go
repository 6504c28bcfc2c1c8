// Package pgnexport turns a move ledger and its metadata into PGN text and files.
package pgnexport

import (
	"fmt"
	"strings"

	"github.com/park285/Cheese-PGN-recorder/internal/domain"
)

const previewWidth = 50

// MoveSource is the read side of a ledger the exporter needs.
type MoveSource interface {
	Records() []domain.MoveRecord
}

// FormatHeaders renders the Seven Tag Roster in fixed order followed by one blank line.
// Values are written as given, so an empty value stays an empty tag.
func FormatHeaders(meta domain.GameMetadata) string {
	tags := []struct{ key, value string }{
		{"Event", meta.Event},
		{"Site", meta.Site},
		{"Date", meta.Date},
		{"Round", meta.Round},
		{"White", meta.White},
		{"Black", meta.Black},
		{"Result", string(meta.ResultOrDefault())},
	}
	var sb strings.Builder
	for _, t := range tags {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", t.key, t.value)
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatMoveText writes one "N. white black " line per record, then the result token.
// A record without a black move is written as "N. white ".
func FormatMoveText(records []domain.MoveRecord, result domain.Result) string {
	if result == "" {
		result = domain.ResultInProgress
	}
	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "%d. %s ", r.MoveNumber, r.WhiteSAN)
		if r.HasBlack() {
			sb.WriteString(r.BlackSAN)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(string(result))
	sb.WriteString("\n")
	return sb.String()
}

// Render returns the full file content.
func Render(src MoveSource, meta domain.GameMetadata) string {
	return FormatHeaders(meta) + FormatMoveText(src.Records(), meta.ResultOrDefault())
}

// Preview wraps Render output between two rulers.
func Preview(src MoveSource, meta domain.GameMetadata) string {
	border := strings.Repeat("=", previewWidth)
	return "\n" + border + "\n" + Render(src, meta) + border + "\n"
}
