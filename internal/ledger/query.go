package ledger

import (
	"fmt"
	"strings"

	"github.com/park285/Cheese-PGN-recorder/internal/domain"
)

// BoardStatus summarizes the live position for display.
type BoardStatus string

const (
	StatusNone      BoardStatus = ""
	StatusCheck     BoardStatus = "check"
	StatusCheckmate BoardStatus = "checkmate"
	StatusStalemate BoardStatus = "stalemate"
	StatusDraw      BoardStatus = "draw"
	// StatusDrawAvailable is a draw the side to move may claim but need not.
	StatusDrawAvailable BoardStatus = "draw_available"
)

// MoveCount is the number of move records, counting a pending white move.
func (l *Ledger) MoveCount() int { return len(l.records) }

// HalfMoveCount is the number of stored half-moves.
func (l *Ledger) HalfMoveCount() int {
	n := len(l.records) * 2
	if n > 0 && !l.records[len(l.records)-1].HasBlack() {
		n--
	}
	return n
}

// HasPendingWhite reports whether the last white move is still unanswered.
func (l *Ledger) HasPendingWhite() bool { return l.Turn() == domain.Black }

// Records returns a copy of the move records.
func (l *Ledger) Records() []domain.MoveRecord { return cloneRecords(l.records) }

// Record returns the record for moveNumber.
func (l *Ledger) Record(moveNumber int) (domain.MoveRecord, bool) {
	if moveNumber < 1 || moveNumber > len(l.records) {
		return domain.MoveRecord{}, false
	}
	return l.records[moveNumber-1], true
}

// DisplayLines renders one "N. white black" line per record.
func (l *Ledger) DisplayLines() []string {
	lines := make([]string, 0, len(l.records))
	for _, r := range l.records {
		if r.HasBlack() {
			lines = append(lines, fmt.Sprintf("%d. %s %s", r.MoveNumber, r.WhiteSAN, r.BlackSAN))
		} else {
			lines = append(lines, fmt.Sprintf("%d. %s", r.MoveNumber, r.WhiteSAN))
		}
	}
	return lines
}

// IsGameOver reports checkmate or stalemate in the live position.
func (l *Ledger) IsGameOver() bool { return l.ended }

// LegalMovesNow lists the legal moves for the side to move.
func (l *Ledger) LegalMovesNow() []string { return l.oracle.LegalMoves() }

// Status reports check, mate, stalemate, an automatic draw or a claimable
// draw in the live position.
func (l *Ledger) Status() (BoardStatus, string) {
	switch {
	case l.oracle.IsCheckmate():
		return StatusCheckmate, ""
	case l.oracle.IsStalemate():
		return StatusStalemate, ""
	}
	if dr, ok := l.oracle.(drawReporter); ok {
		if reason := dr.DrawReason(); reason != "" {
			return StatusDraw, reason
		}
	}
	if l.oracle.IsCheck() {
		return StatusCheck, ""
	}
	if dc, ok := l.oracle.(drawClaimer); ok {
		if claims := dc.ClaimableDraws(); len(claims) > 0 {
			return StatusDrawAvailable, strings.Join(claims, ", ")
		}
	}
	return StatusNone, ""
}

// Opening returns the ECO code and name of the game so far when the oracle
// can classify openings.
func (l *Ledger) Opening() (code, title string) {
	if on, ok := l.oracle.(openingNamer); ok {
		return on.Opening()
	}
	return "", ""
}

// FEN returns the live position in Forsyth-Edwards notation, or "" when the
// oracle cannot write one.
func (l *Ledger) FEN() string {
	if pw, ok := l.oracle.(positionWriter); ok {
		return pw.FEN()
	}
	return ""
}
