// Package prompt implements the blocking y/n confirmation dialog used
// before each install.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dostrap/pkg/errors"
	"github.com/arthur-debert/dostrap/pkg/logging"
)

// Default is the answer assumed when the operator just presses enter.
type Default int

const (
	// DefaultNone forces an explicit answer; empty input re-prompts
	DefaultNone Default = iota
	// DefaultYes treats empty input as "yes"
	DefaultYes
	// DefaultNo treats empty input as "no"
	DefaultNo
)

// Asker reads confirmation answers line by line from a single input stream
type Asker struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates an Asker reading from in and writing prompts to out
func New(in io.Reader, out io.Writer) *Asker {
	return &Asker{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewStdio creates an Asker bound to the process stdin/stdout
func NewStdio() *Asker {
	return New(os.Stdin, os.Stdout)
}

// Ask prints question and blocks until the operator answers yes or no.
// Recognized answers are exactly y/yes and n/no, case-insensitively.
// Empty input resolves to def; with DefaultNone it re-prompts instead.
// Invalid input re-prompts indefinitely; only a read failure (e.g. closed
// stdin) surfaces as an error.
func (a *Asker) Ask(question string, def Default) (bool, error) {
	logger := logging.GetLogger("prompt")
	invalidCount := 0

	for {
		fmt.Fprintf(a.out, "%s %s: ", question, marker(def))

		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read confirmation input")
		}

		switch answer := strings.ToLower(strings.TrimSpace(line)); answer {
		case "":
			if def == DefaultNone {
				invalidCount++
				fmt.Fprintln(a.out, `Please answer "y" or "n".`)
				continue
			}
			return def == DefaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			invalidCount++
			logger.Debug().Str("answer", answer).Int("invalid_count", invalidCount).Msg("unrecognized answer")
			fmt.Fprintln(a.out, `Please answer "y" or "n".`)
		}
	}
}

// marker renders the [Y/n]-style hint for the given default
func marker(def Default) string {
	switch def {
	case DefaultYes:
		return "[Y/n]"
	case DefaultNo:
		return "[y/N]"
	default:
		return "[y/n]"
	}
}
