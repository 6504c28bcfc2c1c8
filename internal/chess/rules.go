package chess

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	nchess "github.com/corentings/chess/v2"

	"github.com/park285/Cheese-PGN-recorder/internal/chess/openingbook"
	"github.com/park285/Cheese-PGN-recorder/internal/domain"
	"github.com/park285/Cheese-PGN-recorder/internal/movesyntax"
)

var (
	ErrNoMatchingMove = errors.New("not a legal move in this position")
	ErrAmbiguousMove  = errors.New("ambiguous move, add the origin file or rank")
	ErrMissingCapture = errors.New("capture must be written with x")
)

// Rules tracks one game from the standard starting position and answers
// legality questions about it.
type Rules struct {
	game *nchess.Game
}

func NewRules() *Rules {
	return &Rules{game: nchess.NewGame()}
}

// Reset returns to the starting position.
func (r *Rules) Reset() {
	r.game = nchess.NewGame()
}

// AttemptMove resolves san against the current position without changing it.
func (r *Rules) AttemptMove(san string) (domain.PlannedMove, error) {
	pos := r.game.Position()
	mv, err := decodeSAN(pos, san)
	if err != nil {
		return domain.PlannedMove{}, err
	}
	return domain.PlannedMove{
		SAN: nchess.AlgebraicNotation{}.Encode(pos, mv),
		UCI: mv.String(),
	}, nil
}

// Apply commits a move previously returned by AttemptMove. The move is
// looked up among the generated moves so its check and capture tags survive.
func (r *Rules) Apply(mv domain.PlannedMove) error {
	valid := r.game.Position().ValidMoves()
	for i := range valid {
		if valid[i].String() != mv.UCI {
			continue
		}
		if err := r.game.Move(&valid[i], nil); err != nil {
			return fmt.Errorf("apply %s: %w", mv.SAN, err)
		}
		return nil
	}
	return fmt.Errorf("apply %s: %w", mv.SAN, ErrNoMatchingMove)
}

// LegalMoves lists the legal moves in SAN, sorted.
func (r *Rules) LegalMoves() []string {
	pos := r.game.Position()
	valid := pos.ValidMoves()
	out := make([]string, 0, len(valid))
	for i := range valid {
		out = append(out, nchess.AlgebraicNotation{}.Encode(pos, &valid[i]))
	}
	sort.Strings(out)
	return out
}

func (r *Rules) IsCheckmate() bool { return r.game.Method() == nchess.Checkmate }

func (r *Rules) IsStalemate() bool { return r.game.Method() == nchess.Stalemate }

// IsCheck reports whether the side to move is in check.
func (r *Rules) IsCheck() bool {
	moves := r.game.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(nchess.Check)
}

// DrawReason names an automatic draw the rules detected, or "".
func (r *Rules) DrawReason() string {
	switch r.game.Method() {
	case nchess.InsufficientMaterial:
		return "insufficient material"
	case nchess.FivefoldRepetition:
		return "fivefold repetition"
	case nchess.SeventyFiveMoveRule:
		return "seventy-five move rule"
	default:
		return ""
	}
}

// ClaimableDraws names the draws the side to move may claim, or nil.
func (r *Rules) ClaimableDraws() []string {
	var out []string
	for _, m := range r.game.EligibleDraws() {
		switch m {
		case nchess.ThreefoldRepetition:
			out = append(out, "threefold repetition")
		case nchess.FiftyMoveRule:
			out = append(out, "fifty-move rule")
		}
	}
	return out
}

// FEN is the current position in Forsyth-Edwards notation.
func (r *Rules) FEN() string { return r.game.FEN() }

// Opening names the ECO opening of the moves played so far.
func (r *Rules) Opening() (code, title string) {
	o, ok := openingbook.Identify(r.game.Moves())
	if !ok {
		return "", ""
	}
	return o.Code, o.Title
}

// decodeSAN resolves castling through the library decoder and everything else
// by matching the move's components against the legal moves. The component
// match accepts redundant disambiguation such as "Ng1f3" and rejects moves
// that fit more than one piece.
func decodeSAN(pos *nchess.Position, san string) (*nchess.Move, error) {
	clean := stripAnnotations(san)
	if movesyntax.IsCastling(clean) {
		mv, err := nchess.AlgebraicNotation{}.Decode(pos, clean)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoMatchingMove, err)
		}
		return mv, nil
	}
	return matchComponents(pos, clean)
}

func stripAnnotations(san string) string {
	return strings.TrimRight(strings.TrimSpace(san), "+#!?")
}

type sanParts struct {
	piece     nchess.PieceType
	fromFile  string
	fromRank  string
	to        string
	capture   bool
	promotion nchess.PieceType
}

func parseParts(san string) (sanParts, bool) {
	p := sanParts{piece: nchess.Pawn}
	s := san
	if s == "" || strings.HasPrefix(s, "O-O") {
		return p, false
	}
	if i := strings.IndexByte(s, '='); i >= 0 {
		if !movesyntax.IsPromotion(s) {
			return p, false
		}
		p.promotion = pieceFromLetter(s[i+1])
		s = s[:i]
	}
	if pt := pieceFromLetter(s[0]); pt != nchess.NoPieceType {
		p.piece = pt
		s = s[1:]
	}
	if i := strings.IndexByte(s, 'x'); i >= 0 {
		p.capture = true
		s = s[:i] + s[i+1:]
	}
	if len(s) < 2 {
		return p, false
	}
	p.to = s[len(s)-2:]
	if !movesyntax.IsValidSquare(p.to) {
		return p, false
	}
	for _, c := range s[:len(s)-2] {
		switch {
		case c >= 'a' && c <= 'h':
			p.fromFile = string(c)
		case c >= '1' && c <= '8':
			p.fromRank = string(c)
		default:
			return p, false
		}
	}
	return p, true
}

func matchComponents(pos *nchess.Position, san string) (*nchess.Move, error) {
	parts, ok := parseParts(san)
	if !ok {
		return nil, ErrNoMatchingMove
	}
	valid := pos.ValidMoves()
	var found *nchess.Move
	for i := range valid {
		mv := &valid[i]
		if mv.S2().String() != parts.to || mv.Promo() != parts.promotion {
			continue
		}
		if pos.Board().Piece(mv.S1()).Type() != parts.piece {
			continue
		}
		from := mv.S1().String()
		// a pawn without an origin file only advances on its own file
		if parts.piece == nchess.Pawn && parts.fromFile == "" && from[:1] != parts.to[:1] {
			continue
		}
		if parts.capture && !isCapture(mv) {
			continue
		}
		if parts.fromFile != "" && from[:1] != parts.fromFile {
			continue
		}
		if parts.fromRank != "" && from[1:] != parts.fromRank {
			continue
		}
		if found != nil {
			return nil, ErrAmbiguousMove
		}
		found = mv
	}
	if found == nil {
		return nil, ErrNoMatchingMove
	}
	if !parts.capture && isCapture(found) {
		return nil, ErrMissingCapture
	}
	return found, nil
}

func isCapture(mv *nchess.Move) bool {
	return mv.HasTag(nchess.Capture) || mv.HasTag(nchess.EnPassant)
}

func pieceFromLetter(b byte) nchess.PieceType {
	switch b {
	case 'K':
		return nchess.King
	case 'Q':
		return nchess.Queen
	case 'R':
		return nchess.Rook
	case 'B':
		return nchess.Bishop
	case 'N':
		return nchess.Knight
	default:
		return nchess.NoPieceType
	}
}
