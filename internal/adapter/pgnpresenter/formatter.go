package pgnpresenter

import (
	"strings"

	"go.uber.org/zap"

	"github.com/park285/Cheese-PGN-recorder/internal/domain"
	"github.com/park285/Cheese-PGN-recorder/internal/msgcat"
	"github.com/park285/Cheese-PGN-recorder/pkg/pgndto"
)

// Renderer is the part of the message catalog the formatter uses.
type Renderer interface {
	Has(key string) bool
	Render(key string, data any) (string, error)
}

var _ Renderer = (*msgcat.Catalog)(nil)

// Formatter renders recorder DTOs into terminal text blocks.
type Formatter struct {
	catalog Renderer
	logger  *zap.Logger
}

func NewFormatter(catalog Renderer, logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Formatter{catalog: catalog, logger: logger}
}

// Text renders a catalog entry. A missing or broken entry falls back to the key itself.
func (f *Formatter) Text(key string, data map[string]any) string {
	if f == nil || f.catalog == nil {
		return key
	}
	if !f.catalog.Has(key) {
		f.logger.Warn("msgcat_key_missing", zap.String("key", key))
		return key
	}
	out, err := f.catalog.Render(key, data)
	if err != nil {
		f.logger.Warn("msgcat_render_failed", zap.String("key", key), zap.Error(err))
		return key
	}
	return out
}

func (f *Formatter) MetaPrompt(field, def string) string {
	return f.Text("meta."+field, map[string]any{"Default": def})
}

func (f *Formatter) MovePrompt(color domain.Color, number int) string {
	if color == domain.Black {
		return f.Text("entry.prompt_black", map[string]any{"Number": number})
	}
	return f.Text("entry.prompt_white", map[string]any{"Number": number})
}

func (f *Formatter) Accepted(color domain.Color, san string) string {
	return f.Text("entry.accepted", map[string]any{"Color": color.Title(), "SAN": san})
}

// Status renders the board status line, or "" when there is nothing to report.
func (f *Formatter) Status(view *pgndto.LedgerView) string {
	if view == nil {
		return ""
	}
	switch view.Status {
	case "check":
		return f.Text("status.check", nil)
	case "checkmate":
		// the side to move is the one mated
		winner := domain.Color(view.Turn).Opponent().Title()
		return f.Text("status.checkmate", map[string]any{"Winner": winner})
	case "stalemate":
		return f.Text("status.stalemate", nil)
	case "draw":
		return f.Text("status.draw", map[string]any{"Reason": view.StatusDetail})
	case "draw_available":
		return f.Text("status.draw_available", map[string]any{"Reason": view.StatusDetail})
	default:
		return ""
	}
}

// Position renders the FEN line, or "" when the oracle does not report one.
func (f *Formatter) Position(view *pgndto.LedgerView) string {
	if view == nil || view.FEN == "" {
		return ""
	}
	return f.Text("entry.position", map[string]any{"FEN": view.FEN})
}

// Moves renders the "Current moves" block.
func (f *Formatter) Moves(view *pgndto.LedgerView) string {
	var sb strings.Builder
	sb.WriteString(f.Text("entry.current_moves", nil))
	sb.WriteString("\n")
	if view.Empty() {
		sb.WriteString(f.Text("entry.no_moves", nil))
	} else {
		sb.WriteString(strings.Join(view.Lines, "\n"))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Opening renders the ECO line, or "" when the opening is unknown.
func (f *Formatter) Opening(view *pgndto.LedgerView) string {
	if view == nil || view.OpeningTitle == "" {
		return ""
	}
	return f.Text("entry.opening", map[string]any{"Code": view.OpeningCode, "Title": view.OpeningTitle})
}

// LegalMoves lists moves comma separated. A positive limit truncates the list.
func (f *Formatter) LegalMoves(moves []string, limit int) string {
	var sb strings.Builder
	sb.WriteString(f.Text("entry.legal_header", map[string]any{"Count": len(moves)}))
	sb.WriteString("\n")
	shown := moves
	if limit > 0 && len(moves) > limit {
		shown = moves[:limit]
	}
	sb.WriteString(strings.Join(shown, ", "))
	if rest := len(moves) - len(shown); rest > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.Text("entry.legal_more", map[string]any{"Rest": rest}))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (f *Formatter) Error(err error) string {
	view := ToErrorView(err)
	key := "errors.unknown"
	if view.Kind != "" {
		key = "errors." + view.Kind
	}
	return f.Text(key, map[string]any{"Message": view.Message})
}

func (f *Formatter) Stopped(view *pgndto.LedgerView) string {
	if view.Empty() {
		return f.Text("summary.none", nil)
	}
	key := "summary.stopped"
	if view.PendingWhite {
		key = "summary.stopped_pending"
	}
	return f.Text(key, map[string]any{"Complete": view.CompleteMoves()})
}

func (f *Formatter) Saved(summary *pgndto.ExportSummary) string {
	if summary == nil {
		return ""
	}
	return f.Text("save.saved", map[string]any{"Path": summary.Path})
}

// Validation renders one line of the validate command.
func (f *Formatter) Validation(input string, err error) string {
	if err == nil {
		return f.Text("validate.ok", map[string]any{"Input": input})
	}
	return f.Text("validate.bad", map[string]any{"Input": input, "Reason": ToErrorView(err).Message})
}
