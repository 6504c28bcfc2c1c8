package ledger

import "github.com/park285/Cheese-PGN-recorder/internal/domain"

// Oracle is the rules engine the ledger consults. It tracks one live position
// starting from the standard initial position.
type Oracle interface {
	// AttemptMove resolves san at the current position. It must not mutate
	// the position, whether or not the move is legal.
	AttemptMove(san string) (domain.PlannedMove, error)
	// Apply commits a move returned by AttemptMove.
	Apply(mv domain.PlannedMove) error
	Reset()
	LegalMoves() []string
	IsCheckmate() bool
	IsStalemate() bool
	IsCheck() bool
}

// Factory builds a fresh oracle at the initial position.
type Factory func() Oracle

// drawReporter is implemented by oracles that detect automatic draws.
type drawReporter interface {
	DrawReason() string
}

// drawClaimer is implemented by oracles that know which draws may be claimed.
type drawClaimer interface {
	ClaimableDraws() []string
}

// positionWriter is implemented by oracles that can print the live position.
type positionWriter interface {
	FEN() string
}

// openingNamer is implemented by oracles that can classify the opening.
type openingNamer interface {
	Opening() (code, title string)
}
