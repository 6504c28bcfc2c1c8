// Package movesyntax checks the surface form of a typed half-move. It never
// looks at a board position.
package movesyntax

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/park285/Cheese-PGN-recorder/internal/domain"
)

// Diagnostics returned inside domain.FormatError.
const (
	ReasonEmpty          = "move cannot be empty"
	ReasonRank           = "rank must be 1-8"
	ReasonLowercasePiece = "piece letter must be uppercase"
	ReasonPromotionPiece = "invalid promotion piece"
	ReasonCastlingZero   = "castling must use the letter O, not zero"
	ReasonUnrecognized   = "invalid move format"
)

// suffix is an optional check/mate sign followed by at most one annotation.
const suffix = `[+#]?(?:!!|\?\?|!\?|\?!|!|\?)?`

// Strict shapes, tried in this order.
var shapes = []*regexp.Regexp{
	regexp.MustCompile(`^O-O(?:-O)?` + suffix + `$`),
	regexp.MustCompile(`^[a-h]?x?[a-h][18]=[QRBN]` + suffix + `$`),
	regexp.MustCompile(`^[KQRBN][a-h]?[1-8]?x?[a-h][1-8]` + suffix + `$`),
	regexp.MustCompile(`^[a-h]x[a-h][1-8]` + suffix + `$`),
	regexp.MustCompile(`^[a-h][1-8]` + suffix + `$`),
}

// Loose shapes accept any digit run as a rank and any letter as a piece so a
// near miss can be told apart from noise.
var (
	zeroCastling   = regexp.MustCompile(`^0-0(?:-0)?` + suffix + `$`)
	loosePromotion = regexp.MustCompile(`^[a-h]?x?[a-h](\d+)=([A-Za-z])` + suffix + `$`)
	loosePiece     = regexp.MustCompile(`^([A-Za-z])[a-h]?(\d?)x?[a-h](\d+)` + suffix + `$`)
	loosePawn      = regexp.MustCompile(`^[a-h](?:x[a-h])?(\d+)` + suffix + `$`)
)

// Validate returns nil when text is a well-formed move and a *domain.FormatError otherwise.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return invalid(text, ReasonEmpty)
	}
	for _, re := range shapes {
		if re.MatchString(text) {
			return nil
		}
	}
	return invalid(text, diagnose(text))
}

func diagnose(text string) string {
	if zeroCastling.MatchString(text) {
		return ReasonCastlingZero
	}

	if m := loosePromotion.FindStringSubmatch(text); m != nil {
		if !inRankRange(m[1]) {
			return ReasonRank
		}
		if !IsValidPromotionPiece(m[2]) {
			return ReasonPromotionPiece
		}
		return ReasonUnrecognized
	}

	if m := loosePiece.FindStringSubmatch(text); m != nil {
		piece := m[1]
		if strings.ContainsAny(piece, "kqrbn") && !loosePawn.MatchString(text) {
			return ReasonLowercasePiece
		}
		if IsValidPiece(piece) && (!inRankRange(m[2]) || !inRankRange(m[3])) {
			return ReasonRank
		}
	}

	if m := loosePawn.FindStringSubmatch(text); m != nil && !inRankRange(m[1]) {
		return ReasonRank
	}
	return ReasonUnrecognized
}

// inRankRange accepts an empty string (absent optional rank) or 1..8.
func inRankRange(s string) bool {
	if s == "" {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1 && n <= 8
}

func invalid(text, reason string) error {
	return &domain.FormatError{Text: text, Reason: reason}
}

// IsCastling reports whether text is well-formed castling.
func IsCastling(text string) bool { return shapes[0].MatchString(strings.TrimSpace(text)) }

// IsPromotion reports whether text is a well-formed pawn promotion.
func IsPromotion(text string) bool { return shapes[1].MatchString(strings.TrimSpace(text)) }

// IsValidPiece reports whether s is one of K, Q, R, B, N.
func IsValidPiece(s string) bool {
	return len(s) == 1 && strings.Contains("KQRBN", s)
}

// IsValidPromotionPiece reports whether s is one of Q, R, B, N.
func IsValidPromotionPiece(s string) bool {
	return len(s) == 1 && strings.Contains("QRBN", s)
}

// IsValidSquare reports whether s names a board square such as "e4".
func IsValidSquare(s string) bool {
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}
