// This file implements the capture session: recognition runs on its own
// goroutine and hands back exactly one result.
package voice

import (
	"context"
	"io"
	"strings"

	"github.com/dmaldon/taskdesk/pkg/types"
)

// Recognizer produces one transcript per call. Implementations wrap
// whatever actually listens: a speech engine, stdin, a test string.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Result is the outcome of one capture session.
type Result struct {
	Draft types.VoiceDraft
	Err   error
}

// Capture runs one recognition on its own goroutine, parses the
// transcript, and delivers exactly one Result. The channel is buffered,
// so the session never blocks on a consumer that walked away.
func Capture(ctx context.Context, r Recognizer, vocabulary []string) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		text, err := r.Recognize(ctx)
		if err != nil {
			out <- Result{Err: err}
			return
		}
		out <- Result{Draft: NewParser(vocabulary).Parse(text)}
	}()

	return out
}

// Static wraps an already-transcribed string as a Recognizer.
type Static string

func (s Static) Recognize(ctx context.Context) (string, error) {
	return string(s), nil
}

// readerRecognizer reads a whole transcript from a stream.
type readerRecognizer struct {
	r io.Reader
}

// FromReader returns a Recognizer that consumes the stream to EOF. The
// read itself honors ctx, so a dictation bounded by a deadline does not
// hang on a silent pipe.
func FromReader(r io.Reader) Recognizer {
	return readerRecognizer{r: r}
}

func (rr readerRecognizer) Recognize(ctx context.Context) (string, error) {
	type readResult struct {
		text string
		err  error
	}
	done := make(chan readResult, 1)

	go func() {
		data, err := io.ReadAll(rr.r)
		done <- readResult{text: strings.TrimSpace(string(data)), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.text, res.err
	}
}
