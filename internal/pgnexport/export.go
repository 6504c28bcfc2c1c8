package pgnexport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/park285/Cheese-PGN-recorder/internal/domain"
)

const (
	fileExt = ".pgn"

	defaultWhite = "Player1"
	defaultBlack = "Player2"
	defaultDate  = "0000.00.00"
	defaultRound = "1"

	// publishAttempts bounds retries when another writer takes the chosen name first.
	publishAttempts = 5
)

// ExportOptions tunes a single export.
type ExportOptions struct {
	// Filename replaces the generated name. ".pgn" is appended when missing.
	Filename string
}

// Exporter writes PGN files.
type Exporter struct {
	logger *zap.Logger
}

// New returns an exporter. A nil logger disables logging.
func New(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger}
}

// GenerateFilename builds "<White>_<Black>_<Date>_<Round>.pgn". Spaces in player names become "_".
func GenerateFilename(meta domain.GameMetadata) string {
	white := strings.ReplaceAll(orDefault(meta.White, defaultWhite), " ", "_")
	black := strings.ReplaceAll(orDefault(meta.Black, defaultBlack), " ", "_")
	date := orDefault(meta.Date, defaultDate)
	round := orDefault(meta.Round, defaultRound)
	return fmt.Sprintf("%s_%s_%s_%s%s", white, black, date, round, fileExt)
}

// EnsureUniqueFilename returns name when it is free in dir, otherwise the first free
// "<base>_2.pgn", "<base>_3.pgn", ...
func EnsureUniqueFilename(dir, name string) (string, error) {
	free, err := available(filepath.Join(dir, name))
	if err != nil || free {
		return name, err
	}
	base := strings.TrimSuffix(name, fileExt)
	for n := 2; ; n++ {
		candidate := base + "_" + strconv.Itoa(n) + fileExt
		free, err := available(filepath.Join(dir, candidate))
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func available(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, os.ErrNotExist):
		return true, nil
	default:
		return false, err
	}
}

// Export writes the game into dir under a name that does not exist yet and returns the path.
// Failures are returned as *domain.IOError and never leave a partial file behind.
func (e *Exporter) Export(src MoveSource, meta domain.GameMetadata, dir string, opts ExportOptions) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", e.fail("mkdir", dir, err)
	}

	name := strings.TrimSpace(opts.Filename)
	if name == "" {
		name = GenerateFilename(meta)
	}
	if !strings.HasSuffix(name, fileExt) {
		name += fileExt
	}

	data := []byte(Render(src, meta))
	var path string
	for attempt := 1; ; attempt++ {
		unique, err := EnsureUniqueFilename(dir, name)
		if err != nil {
			return "", e.fail("stat", filepath.Join(dir, name), err)
		}
		path = filepath.Join(dir, unique)
		err = writeExclusive(dir, path, data)
		if err == nil {
			break
		}
		if errors.Is(err, os.ErrExist) && attempt < publishAttempts {
			e.logger.Debug("pgn_export_name_taken", zap.String("path", path), zap.Int("attempt", attempt))
			continue
		}
		return "", e.fail("write", path, err)
	}
	e.logger.Info("pgn_export",
		zap.String("path", path),
		zap.Int("moves", len(src.Records())),
		zap.String("result", string(meta.ResultOrDefault())),
	)
	return path, nil
}

func (e *Exporter) fail(op, path string, err error) error {
	e.logger.Warn("pgn_export_failed", zap.String("op", op), zap.String("path", path), zap.Error(err))
	return &domain.IOError{Op: op, Path: path, Err: err}
}

// writeExclusive stages data in a temp file next to path and hard-links it
// into place. The link fails with os.ErrExist instead of replacing a file
// that appeared at path in the meantime. The temp file is always removed.
func writeExclusive(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".pgn-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Link(tmpName, path)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
