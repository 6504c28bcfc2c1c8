package recorder

import (
	"bufio"
	"context"
	"io"
)

// lineSource reads lines on its own goroutine so a blocked terminal read
// never holds up cancellation.
type lineSource struct {
	lines <-chan string
	stop  chan struct{}
	eof   bool
}

func newLineSource(r io.Reader) *lineSource {
	lines := make(chan string)
	stop := make(chan struct{})
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
	}()
	return &lineSource{lines: lines, stop: stop}
}

// next returns io.EOF once the input is exhausted and keeps returning it.
func (s *lineSource) next(ctx context.Context) (string, error) {
	if s.eof {
		return "", io.EOF
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			s.eof = true
			return "", io.EOF
		}
		return line, nil
	}
}

func (s *lineSource) close() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}
