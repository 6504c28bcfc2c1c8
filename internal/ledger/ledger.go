// Package ledger keeps the revisable move history of one game and guarantees
// that replaying it from the initial position is always legal.
package ledger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/park285/Cheese-PGN-recorder/internal/domain"
	"github.com/park285/Cheese-PGN-recorder/internal/movesyntax"
)

// Ledger owns the move records and the live oracle for their final position.
// It is not safe for concurrent use.
type Ledger struct {
	newOracle Factory
	oracle    Oracle
	records   []domain.MoveRecord
	ended     bool
	logger    *zap.Logger
}

// halfMove addresses one stored move by number and side.
type halfMove struct {
	number int
	color  domain.Color
	san    string
}

func New(newOracle Factory, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := newOracle()
	o.Reset()
	return &Ledger{newOracle: newOracle, oracle: o, logger: logger}
}

// Turn is the side expected to move next.
func (l *Ledger) Turn() domain.Color {
	if n := len(l.records); n > 0 && !l.records[n-1].HasBlack() {
		return domain.Black
	}
	return domain.White
}

// NextMoveNumber is the number the next half-move will be recorded under.
func (l *Ledger) NextMoveNumber() int {
	n := len(l.records)
	if n > 0 && !l.records[n-1].HasBlack() {
		return n
	}
	return n + 1
}

// SubmitHalfMove records san for color at the end of the game.
func (l *Ledger) SubmitHalfMove(san string, color domain.Color) error {
	if color != l.Turn() {
		return &domain.StateError{Reason: domain.ReasonWrongTurn}
	}
	if err := movesyntax.Validate(san); err != nil {
		return err
	}

	number := l.NextMoveNumber()
	planned, err := l.oracle.AttemptMove(san)
	if err != nil {
		l.logger.Debug("ledger_submit_illegal",
			zap.String("san", san),
			zap.Int("move_number", number),
			zap.String("color", string(color)),
			zap.Error(err),
		)
		return &domain.LegalityError{SAN: san, Reason: err.Error(), MoveNumber: number, Color: color}
	}
	if err := l.oracle.Apply(planned); err != nil {
		return &domain.LegalityError{SAN: san, Reason: err.Error(), MoveNumber: number, Color: color}
	}

	if color == domain.White {
		l.records = append(l.records, domain.MoveRecord{MoveNumber: number, WhiteSAN: san})
	} else {
		l.records[len(l.records)-1].BlackSAN = san
	}
	l.ended = l.oracle.IsCheckmate() || l.oracle.IsStalemate()

	l.logger.Info("ledger_submit",
		zap.String("san", san),
		zap.String("canonical", planned.SAN),
		zap.Int("move_number", number),
		zap.String("color", string(color)),
		zap.Bool("game_over", l.ended),
	)
	return nil
}

// UndoLastHalfMove removes the most recent half-move and rebuilds the live
// position from the shorter history.
func (l *Ledger) UndoLastHalfMove() error {
	n := len(l.records)
	if n == 0 {
		return &domain.StateError{Reason: domain.ReasonNothingToUndo}
	}

	next := cloneRecords(l.records)
	last := &next[n-1]
	removed := halfMove{number: last.MoveNumber}
	if last.HasBlack() {
		removed.color, removed.san = domain.Black, last.BlackSAN
		last.BlackSAN = ""
	} else {
		removed.color, removed.san = domain.White, last.WhiteSAN
		next = next[:n-1]
	}

	o, err := l.replay(flatten(next))
	if err != nil {
		return fmt.Errorf("rebuild position after undo: %w", err)
	}
	l.commit(next, o)

	l.logger.Info("ledger_undo",
		zap.String("san", removed.san),
		zap.Int("move_number", removed.number),
		zap.String("color", string(removed.color)),
	)
	return nil
}

// EditHalfMove replaces one stored half-move. Every later half-move is
// replayed on top of the replacement; if any of them stops being legal the
// edit is rejected and nothing changes.
func (l *Ledger) EditHalfMove(moveNumber int, color domain.Color, newSAN string) error {
	if moveNumber < 1 || moveNumber > len(l.records) {
		return &domain.StateError{Reason: domain.ReasonNoSuchMove, MoveNumber: moveNumber, Color: color}
	}
	rec := l.records[moveNumber-1]
	if (color != domain.White && color != domain.Black) || (color == domain.Black && !rec.HasBlack()) {
		return &domain.StateError{Reason: domain.ReasonNoSuchMove, MoveNumber: moveNumber, Color: color}
	}
	if err := movesyntax.Validate(newSAN); err != nil {
		return err
	}

	moves := flatten(l.records)
	target := (moveNumber - 1) * 2
	if color == domain.Black {
		target++
	}

	scratch, err := l.replay(moves[:target])
	if err != nil {
		return fmt.Errorf("rebuild position before edit: %w", err)
	}
	planned, err := scratch.AttemptMove(newSAN)
	if err != nil {
		l.logger.Info("ledger_edit_rejected",
			zap.Int("move_number", moveNumber),
			zap.String("color", string(color)),
			zap.String("san", newSAN),
			zap.Error(err),
		)
		return &domain.LegalityError{SAN: newSAN, Reason: err.Error(), MoveNumber: moveNumber, Color: color}
	}
	if err := scratch.Apply(planned); err != nil {
		return &domain.LegalityError{SAN: newSAN, Reason: err.Error(), MoveNumber: moveNumber, Color: color}
	}

	for _, hm := range moves[target+1:] {
		if err := step(scratch, hm); err != nil {
			l.logger.Info("ledger_edit_rejected",
				zap.Int("move_number", moveNumber),
				zap.String("color", string(color)),
				zap.String("san", newSAN),
				zap.Int("broken_move_number", hm.number),
				zap.String("broken_color", string(hm.color)),
				zap.Error(err),
			)
			return &domain.StateError{
				Reason:     domain.ReasonBreaksLaterMove,
				MoveNumber: hm.number,
				Color:      hm.color,
				Err:        err,
			}
		}
	}

	next := cloneRecords(l.records)
	if color == domain.White {
		next[moveNumber-1].WhiteSAN = newSAN
	} else {
		next[moveNumber-1].BlackSAN = newSAN
	}
	l.commit(next, scratch)

	l.logger.Info("ledger_edit",
		zap.Int("move_number", moveNumber),
		zap.String("color", string(color)),
		zap.String("old_san", rec.SAN(color)),
		zap.String("new_san", newSAN),
		zap.Int("replayed", len(moves)-target-1),
	)
	return nil
}

func (l *Ledger) commit(records []domain.MoveRecord, o Oracle) {
	l.records = records
	l.oracle = o
	l.ended = o.IsCheckmate() || o.IsStalemate()
}

// replay builds a fresh oracle positioned after moves.
func (l *Ledger) replay(moves []halfMove) (Oracle, error) {
	o := l.newOracle()
	o.Reset()
	for _, hm := range moves {
		if err := step(o, hm); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func step(o Oracle, hm halfMove) error {
	planned, err := o.AttemptMove(hm.san)
	if err == nil {
		err = o.Apply(planned)
	}
	if err != nil {
		return &domain.LegalityError{SAN: hm.san, Reason: err.Error(), MoveNumber: hm.number, Color: hm.color}
	}
	return nil
}

func flatten(records []domain.MoveRecord) []halfMove {
	out := make([]halfMove, 0, len(records)*2)
	for _, r := range records {
		out = append(out, halfMove{number: r.MoveNumber, color: domain.White, san: r.WhiteSAN})
		if r.HasBlack() {
			out = append(out, halfMove{number: r.MoveNumber, color: domain.Black, san: r.BlackSAN})
		}
	}
	return out
}

func cloneRecords(records []domain.MoveRecord) []domain.MoveRecord {
	return append([]domain.MoveRecord(nil), records...)
}
