// Package recorder runs one interactive recording session: metadata prompts,
// move entry, result, optional edits and the final export.
package recorder

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/park285/Cheese-PGN-recorder/internal/adapter/pgnpresenter"
	"github.com/park285/Cheese-PGN-recorder/internal/chess"
	"github.com/park285/Cheese-PGN-recorder/internal/config"
	"github.com/park285/Cheese-PGN-recorder/internal/domain"
	"github.com/park285/Cheese-PGN-recorder/internal/ledger"
	"github.com/park285/Cheese-PGN-recorder/internal/pgnexport"
	"github.com/park285/Cheese-PGN-recorder/pkg/pgndto"
)

// Session owns one ledger and the terminal it talks to.
type Session struct {
	id       string
	cfg      *config.AppConfig
	in       *lineSource
	out      *pgnpresenter.Presenter
	text     *pgnpresenter.Formatter
	ledger   *ledger.Ledger
	exporter *pgnexport.Exporter
	meta     domain.GameMetadata
	logger   *zap.Logger
	now      func() time.Time
	oracle   ledger.Factory
}

type Option func(*Session)

// WithLogger sets the session logger. The session id is attached to every entry.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now for the default date.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithOracle replaces the rules engine.
func WithOracle(f ledger.Factory) Option {
	return func(s *Session) { s.oracle = f }
}

func New(cfg *config.AppConfig, in io.Reader, out io.Writer, text *pgnpresenter.Formatter, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		cfg:    cfg,
		in:     newLineSource(in),
		out:    pgnpresenter.NewPresenter(out),
		text:   text,
		logger: zap.NewNop(),
		now:    time.Now,
		oracle: func() ledger.Oracle { return chess.NewRules() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))
	s.ledger = ledger.New(s.oracle, s.logger)
	s.exporter = pgnexport.New(s.logger)
	return s
}

// ID returns the session id used in logs.
func (s *Session) ID() string { return s.id }

// Ledger exposes the session's move history.
func (s *Session) Ledger() *ledger.Ledger { return s.ledger }

// Metadata returns the collected tags.
func (s *Session) Metadata() domain.GameMetadata { return s.meta }

// Run drives the whole session. It returns the export summary when a file was
// written and nil when the user left without saving. Cancelling ctx behaves
// like Ctrl+C: the user is offered a last save.
func (s *Session) Run(ctx context.Context) (*pgndto.ExportSummary, error) {
	defer s.in.close()
	s.logger.Info("session_start")

	s.say(s.text.Text("app.banner", nil))
	if err := s.collectMetadata(ctx); err != nil {
		return s.abort(err)
	}

	s.say(s.text.Text("app.ready", nil))
	if err := s.entryLoop(ctx); err != nil {
		return s.abort(err)
	}

	view := pgnpresenter.ToLedgerView(s.ledger)
	s.say(s.text.Stopped(view))
	if view.Empty() {
		s.logger.Info("session_end", zap.Bool("saved", false))
		return nil, nil
	}

	if err := s.askResult(ctx); err != nil {
		return s.abort(err)
	}
	if err := s.previewAndEdit(ctx); err != nil {
		return s.abort(err)
	}

	summary := s.save()
	s.say(s.text.Text("app.goodbye", nil))
	s.logger.Info("session_end", zap.Bool("saved", summary != nil))
	return summary, nil
}

// abort ends the session after EOF or cancellation.
func (s *Session) abort(err error) (*pgndto.ExportSummary, error) {
	switch {
	case errors.Is(err, io.EOF):
		// input ended before any move was entered
		s.newline()
		s.say(s.text.Text("interrupt.goodbye", nil))
		s.logger.Info("session_end", zap.Bool("saved", false), zap.String("reason", "eof"))
		return nil, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return s.interrupted()
	default:
		s.logger.Error("session_failed", zap.Error(err))
		return nil, err
	}
}

func (s *Session) interrupted() (*pgndto.ExportSummary, error) {
	s.say(s.text.Text("interrupt.banner", nil))
	s.logger.Info("session_interrupted", zap.Int("moves", s.ledger.MoveCount()))

	var summary *pgndto.ExportSummary
	if n := s.ledger.MoveCount(); n > 0 {
		s.say(s.text.Text("interrupt.count", map[string]any{"Count": n}))
		yes, err := s.confirm(context.Background(), s.text.Text("interrupt.ask", nil))
		if err == nil && yes {
			summary = s.save()
		}
	}
	s.say(s.text.Text("interrupt.goodbye", nil))
	return summary, nil
}

func (s *Session) collectMetadata(ctx context.Context) error {
	s.say(s.text.Text("meta.intro", nil))

	event, err := s.askDefault(ctx, "event", s.cfg.DefaultEvent)
	if err != nil {
		return err
	}
	site, err := s.askDefault(ctx, "site", s.cfg.DefaultSite)
	if err != nil {
		return err
	}
	date, err := s.askDate(ctx)
	if err != nil {
		return err
	}
	round, err := s.askDefault(ctx, "round", s.cfg.DefaultRound)
	if err != nil {
		return err
	}
	white, err := s.askDefault(ctx, "white", s.cfg.DefaultWhite)
	if err != nil {
		return err
	}
	black, err := s.askDefault(ctx, "black", s.cfg.DefaultBlack)
	if err != nil {
		return err
	}

	s.meta = domain.NewGameMetadata(event, site, date, round, white, black)
	s.logger.Info("session_metadata",
		zap.String("event", event),
		zap.String("date", date),
		zap.String("white", white),
		zap.String("black", black),
	)
	return nil
}

func (s *Session) askDefault(ctx context.Context, field, def string) (string, error) {
	s.prompt(s.text.MetaPrompt(field, def))
	line, err := s.in.next(ctx)
	if err != nil {
		return "", err
	}
	if v := strings.TrimSpace(line); v != "" {
		return v, nil
	}
	return def, nil
}

func (s *Session) askDate(ctx context.Context) (string, error) {
	for {
		s.prompt(s.text.MetaPrompt("date", ""))
		line, err := s.in.next(ctx)
		if err != nil {
			return "", err
		}
		input := strings.TrimSpace(line)
		if input == "" {
			return s.now().Format(pgnDateLayout), nil
		}
		date, err := NormalizeDate(input)
		if err == nil {
			return date, nil
		}
		s.say(s.text.Text("meta.bad_date", map[string]any{"Input": input}))
	}
}

// entryLoop reads half-moves until the user stops, input ends or the game is over.
func (s *Session) entryLoop(ctx context.Context) error {
	for !s.ledger.IsGameOver() {
		color := s.ledger.Turn()
		s.prompt(s.text.MovePrompt(color, s.ledger.NextMoveNumber()))
		line, err := s.in.next(ctx)
		if errors.Is(err, io.EOF) {
			s.newline()
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if cmd, ok := parseCommand(input); ok {
			if cmd == cmdDone {
				return nil
			}
			s.runCommand(cmd)
			continue
		}

		if err := s.ledger.SubmitHalfMove(input, color); err != nil {
			s.say(s.text.Error(err))
			continue
		}
		s.say(s.text.Accepted(color, input))
		if s.cfg.ShowStatus {
			s.say(s.text.Status(pgnpresenter.ToLedgerView(s.ledger)))
		}
	}
	return nil
}

func (s *Session) runCommand(cmd command) {
	switch cmd {
	case cmdUndo:
		if err := s.ledger.UndoLastHalfMove(); err != nil {
			if domain.IsStateReason(err, domain.ReasonNothingToUndo) {
				s.say(s.text.Text("entry.nothing_to_undo", nil))
				return
			}
			s.say(s.text.Error(err))
			return
		}
		s.say(s.text.Text("entry.undone", nil))
	case cmdShow:
		view := pgnpresenter.ToLedgerView(s.ledger)
		s.say(s.text.Moves(view))
		s.say(s.text.Opening(view))
	case cmdPreview:
		s.say(pgnexport.Preview(s.ledger, s.meta))
	case cmdLegal:
		s.say(s.text.LegalMoves(s.ledger.LegalMovesNow(), s.cfg.LegalPreviewLimit))
	case cmdHelp:
		s.say(s.text.Text("help.entry", nil))
	}
}

func (s *Session) askResult(ctx context.Context) error {
	s.say(s.text.Text("result.header", nil))
	for {
		s.prompt(s.text.Text("result.prompt", nil))
		line, err := s.in.next(ctx)
		if errors.Is(err, io.EOF) {
			// leave the result open
			s.newline()
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.meta.SetResult(line); err != nil {
			s.say(s.text.Text("result.invalid", nil))
			continue
		}
		s.logger.Info("session_result", zap.String("result", string(s.meta.Result)))
		return nil
	}
}

func (s *Session) previewAndEdit(ctx context.Context) error {
	yes, err := s.confirm(ctx, s.text.Text("edit.ask_preview", nil))
	if err != nil {
		return err
	}
	if yes {
		s.say(pgnexport.Preview(s.ledger, s.meta))
	}

	yes, err = s.confirm(ctx, s.text.Text("edit.ask_edit", nil))
	if err != nil || !yes {
		return err
	}

	for {
		s.say(s.text.Moves(pgnpresenter.ToLedgerView(s.ledger)))
		count := s.ledger.MoveCount()
		if count > 0 {
			s.prompt(s.text.Text("edit.choose", map[string]any{"Max": count}))
		} else {
			s.prompt(s.text.Text("edit.choose_empty", nil))
		}
		line, err := s.in.next(ctx)
		if errors.Is(err, io.EOF) {
			s.newline()
			break
		}
		if err != nil {
			return err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == "done" {
			break
		}
		if choice == "add" {
			s.say(s.text.Text("edit.adding", nil))
			if err := s.entryLoop(ctx); err != nil {
				return err
			}
			continue
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			s.say(s.text.Text("edit.bad_input", nil))
			continue
		}
		if n < 1 || n > count {
			s.say(s.text.Text("edit.bad_number", map[string]any{"Max": count}))
			continue
		}
		if err := s.editOne(ctx, n); err != nil {
			return err
		}
	}

	s.say(s.text.Text("edit.final", nil))
	s.say(pgnexport.Preview(s.ledger, s.meta))
	return nil
}

func (s *Session) editOne(ctx context.Context, moveNumber int) error {
	s.prompt(s.text.Text("edit.color", nil))
	line, err := s.in.next(ctx)
	if err != nil {
		return ignoreEOF(err)
	}
	color, err := domain.ParseColor(line)
	if err != nil {
		s.say(s.text.Text("edit.bad_color", nil))
		return nil
	}

	rec, _ := s.ledger.Record(moveNumber)
	current := rec.SAN(color)
	if current == "" {
		s.say(s.text.Text("edit.no_black", nil))
		return nil
	}
	s.say(s.text.Text("edit.current", map[string]any{"SAN": current}))

	s.prompt(s.text.Text("edit.new", nil))
	line, err = s.in.next(ctx)
	if err != nil {
		return ignoreEOF(err)
	}
	if err := s.ledger.EditHalfMove(moveNumber, color, strings.TrimSpace(line)); err != nil {
		s.say(s.text.Error(err))
		return nil
	}
	s.say(s.text.Text("edit.updated", nil))
	return nil
}

// confirm asks a y/n question. EOF counts as no.
func (s *Session) confirm(ctx context.Context, question string) (bool, error) {
	s.prompt(question)
	line, err := s.in.next(ctx)
	if errors.Is(err, io.EOF) {
		s.newline()
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *Session) save() *pgndto.ExportSummary {
	s.say(s.text.Text("save.saving", nil))
	path, err := s.exporter.Export(s.ledger, s.meta, s.cfg.OutputDir, pgnexport.ExportOptions{})
	if err != nil {
		s.say(s.text.Error(err))
		return nil
	}
	summary := pgnpresenter.ToExportSummary(path, s.ledger, s.meta)
	s.say(s.text.Saved(summary))
	return summary
}

func (s *Session) say(msg string) { _ = s.out.Line(msg) }

func (s *Session) prompt(msg string) { _ = s.out.Prompt(msg) }

func (s *Session) newline() { _ = s.out.Prompt("\n") }

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
