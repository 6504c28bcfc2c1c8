// Package openingbook names the opening a game follows using the ECO table
// bundled with the chess library.
package openingbook

import (
	"sync"

	chesslib "github.com/corentings/chess/v2"
	"github.com/corentings/chess/v2/opening"
)

var (
	ecoOnce sync.Once
	ecoBook *opening.BookECO
)

// Opening is one ECO classification.
type Opening struct {
	Code  string
	Title string
}

func (o Opening) String() string {
	if o.Code == "" {
		return o.Title
	}
	return o.Code + " " + o.Title
}

func book() *opening.BookECO {
	ecoOnce.Do(func() {
		ecoBook = opening.NewBookECO()
	})
	return ecoBook
}

// Identify returns the most specific opening the move sequence follows.
func Identify(moves []*chesslib.Move) (Opening, bool) {
	if len(moves) == 0 {
		return Opening{}, false
	}
	b := book()
	if b == nil {
		return Opening{}, false
	}
	eco := b.Find(moves)
	if eco == nil {
		return Opening{}, false
	}
	return Opening{Code: eco.Code(), Title: eco.Title()}, true
}
