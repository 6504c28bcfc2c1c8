package pgndto

// LedgerView is a read-only snapshot of a recording session.
type LedgerView struct {
	Lines          []string
	MoveCount      int
	PendingWhite   bool
	NextMoveNumber int
	Turn           string
	Status         string
	StatusDetail   string
	GameOver       bool
	OpeningCode    string
	OpeningTitle   string
	FEN            string
}

// CompleteMoves counts move pairs with both halves played.
func (v *LedgerView) CompleteMoves() int {
	if v == nil {
		return 0
	}
	if v.PendingWhite {
		return v.MoveCount - 1
	}
	return v.MoveCount
}

// Empty reports whether no half-move has been recorded.
func (v *LedgerView) Empty() bool { return v == nil || v.MoveCount == 0 }
