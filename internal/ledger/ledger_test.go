package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/park285/Cheese-PGN-recorder/internal/chess"
	"github.com/park285/Cheese-PGN-recorder/internal/domain"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(func() Oracle { return chess.NewRules() }, nil)
}

// play submits alternating half-moves starting with white.
func play(t *testing.T, l *Ledger, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		require.NoError(t, l.SubmitHalfMove(mv, l.Turn()), "submit %s", mv)
	}
}

func fen(l *Ledger) string { return l.oracle.(*chess.Rules).FEN() }

func replayFEN(t *testing.T, moves ...string) string {
	t.Helper()
	r := chess.NewRules()
	for _, mv := range moves {
		planned, err := r.AttemptMove(mv)
		require.NoError(t, err, "attempt %s", mv)
		require.NoError(t, r.Apply(planned))
	}
	return r.FEN()
}

type snapshot struct {
	records []domain.MoveRecord
	fen     string
	turn    domain.Color
	over    bool
}

func snap(l *Ledger) snapshot {
	return snapshot{records: l.Records(), fen: fen(l), turn: l.Turn(), over: l.IsGameOver()}
}

func TestSubmit_DisplayLines(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.SubmitHalfMove("e4", domain.White))
	require.NoError(t, l.SubmitHalfMove("e5", domain.Black))
	require.NoError(t, l.SubmitHalfMove("Nf3", domain.White))
	require.NoError(t, l.SubmitHalfMove("Nc6", domain.Black))
	require.NoError(t, l.SubmitHalfMove("Bb5", domain.White))

	assert.Equal(t, []string{"1. e4 e5", "2. Nf3 Nc6", "3. Bb5"}, l.DisplayLines())
	assert.Equal(t, 3, l.MoveCount())
	assert.Equal(t, 5, l.HalfMoveCount())
	assert.Equal(t, domain.Black, l.Turn())
	assert.True(t, l.HasPendingWhite())
	assert.Equal(t, 3, l.NextMoveNumber())
}

func TestEmptyLedger(t *testing.T) {
	l := newTestLedger(t)
	assert.Equal(t, domain.White, l.Turn())
	assert.Empty(t, l.DisplayLines())
	assert.Zero(t, l.MoveCount())
	assert.False(t, l.IsGameOver())
	assert.Len(t, l.LegalMovesNow(), 20)
	assert.Contains(t, l.LegalMovesNow(), "Nf3")
	status, _ := l.Status()
	assert.Equal(t, StatusNone, status)
}

func TestSubmit_WrongTurn(t *testing.T) {
	l := newTestLedger(t)
	err := l.SubmitHalfMove("e5", domain.Black)
	require.Error(t, err)
	assert.True(t, domain.IsStateReason(err, domain.ReasonWrongTurn))
	assert.Zero(t, l.MoveCount())
}

func TestSubmit_FormatErrorLeavesLedger(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4")
	before := snap(l)

	err := l.SubmitHalfMove("e9", domain.Black)
	var fe *domain.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "rank must be 1-8", fe.Reason)
	assert.Equal(t, before, snap(l))
}

func TestSubmit_IllegalMove(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4")
	before := snap(l)

	err := l.SubmitHalfMove("e4", domain.Black)
	var le *domain.LegalityError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, domain.KindLegality, domain.Kind(err))
	assert.NotEmpty(t, le.Reason)
	assert.Equal(t, before, snap(l))
}

func TestSubmit_AnnotatedAndDisambiguated(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "d4", "d5", "Nf3!?", "Nf6", "Nbd2", "e6?!")
	assert.Equal(t, []string{"1. d4 d5", "2. Nf3!? Nf6", "3. Nbd2 e6?!"}, l.DisplayLines())
}

func TestSubmit_PawnCaptureWithoutFile(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "d5")
	before := snap(l)

	err := l.SubmitHalfMove("d5", domain.White)
	var le *domain.LegalityError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "d5", le.SAN)
	assert.Equal(t, before, snap(l))
	assert.Equal(t, []string{"1. e4 d5"}, l.DisplayLines())

	play(t, l, "exd5")
	assert.Equal(t, []string{"1. e4 d5", "2. exd5"}, l.DisplayLines())
}

func TestEdit_RejectsCaptureWithoutFile(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "d5", "exd5", "Qxd5")
	before := snap(l)

	err := l.EditHalfMove(2, domain.White, "d5")
	assert.Equal(t, domain.KindLegality, domain.Kind(err))
	assert.Equal(t, before, snap(l))
}

func TestUndo_RoundTrip(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "e5", "Nf3")

	for _, next := range []string{"Nc6", "Bc4"} {
		before := snap(l)
		require.NoError(t, l.SubmitHalfMove(next, l.Turn()))
		require.NoError(t, l.UndoLastHalfMove())
		assert.Equal(t, before, snap(l))
		// put it back so the next iteration covers the other side
		require.NoError(t, l.SubmitHalfMove(next, l.Turn()))
	}
}

func TestUndo_RemovesWholeRecordForWhite(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "e5", "Nf3")

	require.NoError(t, l.UndoLastHalfMove())
	assert.Equal(t, []string{"1. e4 e5"}, l.DisplayLines())
	assert.Equal(t, domain.White, l.Turn())

	require.NoError(t, l.UndoLastHalfMove())
	assert.Equal(t, []string{"1. e4"}, l.DisplayLines())
	assert.Equal(t, replayFEN(t, "e4"), fen(l))
}

func TestUndo_Empty(t *testing.T) {
	l := newTestLedger(t)
	err := l.UndoLastHalfMove()
	assert.True(t, domain.IsStateReason(err, domain.ReasonNothingToUndo))
}

func TestEdit_Success(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "e5", "Nf3", "Nc6", "Bb5")

	require.NoError(t, l.EditHalfMove(2, domain.Black, "a6"))
	assert.Equal(t, []string{"1. e4 e5", "2. Nf3 a6", "3. Bb5"}, l.DisplayLines())
	assert.Equal(t, replayFEN(t, "e4", "e5", "Nf3", "a6", "Bb5"), fen(l))
	assert.Equal(t, domain.Black, l.Turn())
}

func TestEdit_LastHalfMove(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "e5", "Nf3")

	require.NoError(t, l.EditHalfMove(2, domain.White, "Bc4"))
	assert.Equal(t, []string{"1. e4 e5", "2. Bc4"}, l.DisplayLines())
	assert.Equal(t, replayFEN(t, "e4", "e5", "Bc4"), fen(l))
}

func TestEdit_BreaksLaterMove(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "e5", "Nf3", "d5", "exd5")
	before := snap(l)

	err := l.EditHalfMove(2, domain.Black, "Nc6")
	require.Error(t, err)

	var se *domain.StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.ReasonBreaksLaterMove, se.Reason)
	assert.Equal(t, 3, se.MoveNumber)
	assert.Equal(t, domain.White, se.Color)

	var le *domain.LegalityError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "exd5", le.SAN)

	assert.Equal(t, before, snap(l))
	assert.Equal(t, "2. Nf3 d5", l.DisplayLines()[1])
}

func TestEdit_BreaksFirstOfSeveralLaterMoves(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "d5", "exd5", "Qxd5", "Nc3")

	err := l.EditHalfMove(1, domain.Black, "e5")
	var se *domain.StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.MoveNumber)
	assert.Equal(t, domain.White, se.Color)
	assert.Equal(t, []string{"1. e4 d5", "2. exd5 Qxd5", "3. Nc3"}, l.DisplayLines())
}

func TestEdit_RejectedLeavesLedgerUntouched(t *testing.T) {
	cases := []struct {
		name   string
		number int
		color  domain.Color
		san    string
		kind   domain.ErrorKind
	}{
		{"format", 1, domain.White, "e9", domain.KindFormat},
		{"illegal", 1, domain.White, "e5", domain.KindLegality},
		{"downstream", 1, domain.White, "d4", domain.KindState},
		{"move number too high", 4, domain.White, "e4", domain.KindState},
		{"move number zero", 0, domain.White, "e4", domain.KindState},
		{"missing black", 3, domain.Black, "a6", domain.KindState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t)
			play(t, l, "e4", "e5", "Nf3", "Nc6", "Bb5")
			before := snap(l)

			err := l.EditHalfMove(tc.number, tc.color, tc.san)
			require.Error(t, err)
			assert.Equal(t, tc.kind, domain.Kind(err))
			assert.Equal(t, before, snap(l))
		})
	}
}

func TestEdit_NoSuchMoveReason(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4")
	err := l.EditHalfMove(1, domain.Black, "e5")
	assert.True(t, domain.IsStateReason(err, domain.ReasonNoSuchMove))
}

func TestCheckmateEndsGame(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "f3", "e5", "g4", "Qh4#")

	assert.True(t, l.IsGameOver())
	status, _ := l.Status()
	assert.Equal(t, StatusCheckmate, status)
	assert.Empty(t, l.LegalMovesNow())

	require.NoError(t, l.UndoLastHalfMove())
	assert.False(t, l.IsGameOver())
}

func TestStalemateEndsGame(t *testing.T) {
	l := newTestLedger(t)
	play(t, l,
		"e3", "a5", "Qh5", "Ra6", "Qxa5", "h5", "h4", "Rah6", "Qxc7", "f6",
		"Qxd7+", "Kf7", "Qxb7", "Qd3", "Qxb8", "Qh7", "Qxc8", "Kg6", "Qe6",
	)
	assert.True(t, l.IsGameOver())
	status, _ := l.Status()
	assert.Equal(t, StatusStalemate, status)
}

func TestStatus_Check(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "e4", "f5", "Qh5+")
	status, _ := l.Status()
	assert.Equal(t, StatusCheck, status)
	assert.False(t, l.IsGameOver())
}

func TestStatus_ClaimableDraw(t *testing.T) {
	l := newTestLedger(t)
	play(t, l, "Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1")
	status, _ := l.Status()
	assert.Equal(t, StatusNone, status)

	play(t, l, "Ng8")
	status, detail := l.Status()
	assert.Equal(t, StatusDrawAvailable, status)
	assert.Equal(t, "threefold repetition", detail)
	assert.False(t, l.IsGameOver())

	require.NoError(t, l.UndoLastHalfMove())
	status, _ = l.Status()
	assert.Equal(t, StatusNone, status)
}

func TestFEN(t *testing.T) {
	l := newTestLedger(t)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", l.FEN())
	play(t, l, "e4")
	assert.Equal(t, replayFEN(t, "e4"), l.FEN())
}

func TestOpening(t *testing.T) {
	l := newTestLedger(t)
	code, title := l.Opening()
	assert.Empty(t, code)
	assert.Empty(t, title)

	play(t, l, "e4", "e5", "Nf3", "Nc6", "Bb5")
	code, title = l.Opening()
	assert.NotEmpty(t, code)
	assert.Contains(t, title, "Ruy Lopez")

	require.NoError(t, l.UndoLastHalfMove())
	_, title = l.Opening()
	assert.NotContains(t, title, "Ruy Lopez")
}
