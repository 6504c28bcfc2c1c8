package pgnpresenter

import (
	"errors"

	"github.com/park285/Cheese-PGN-recorder/internal/domain"
	"github.com/park285/Cheese-PGN-recorder/internal/ledger"
	"github.com/park285/Cheese-PGN-recorder/pkg/pgndto"
)

func ToLedgerView(l *ledger.Ledger) *pgndto.LedgerView {
	if l == nil {
		return nil
	}
	status, detail := l.Status()
	code, title := l.Opening()
	return &pgndto.LedgerView{
		Lines:          l.DisplayLines(),
		MoveCount:      l.MoveCount(),
		PendingWhite:   l.HasPendingWhite(),
		NextMoveNumber: l.NextMoveNumber(),
		Turn:           string(l.Turn()),
		Status:         string(status),
		StatusDetail:   detail,
		GameOver:       l.IsGameOver(),
		OpeningCode:    code,
		OpeningTitle:   title,
		FEN:            l.FEN(),
	}
}

// ToErrorView classifies err for display. Every ledger and export error is retryable.
func ToErrorView(err error) pgndto.ErrorView {
	if err == nil {
		return pgndto.ErrorView{}
	}
	kind := domain.Kind(err)
	view := pgndto.ErrorView{
		Kind:      string(kind),
		Message:   err.Error(),
		Retryable: kind != "",
	}
	switch kind {
	case domain.KindFormat:
		var fe *domain.FormatError
		if errors.As(err, &fe) {
			view.Message = fe.Reason
		}
	case domain.KindLegality:
		var le *domain.LegalityError
		if errors.As(err, &le) {
			view.Message = le.SAN + " (" + le.Reason + ")"
		}
	}
	return view
}

func ToExportSummary(path string, l *ledger.Ledger, meta domain.GameMetadata) *pgndto.ExportSummary {
	moves := 0
	if l != nil {
		moves = l.HalfMoveCount()
	}
	return &pgndto.ExportSummary{
		Path:   path,
		Moves:  moves,
		Result: string(meta.ResultOrDefault()),
	}
}
