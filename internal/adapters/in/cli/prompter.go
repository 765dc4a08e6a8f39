package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrQuit ends the session: the operator pressed Ctrl-C or Ctrl-D, or input ran out.
var ErrQuit = errors.New("session ended by operator")

// Prompter reads one answer per question. Answers come back trimmed.
type Prompter interface {
	Prompt(label string) (string, error)
}

// ReadlinePrompter reads answers from a terminal with line editing and history.
type ReadlinePrompter struct {
	rl  *readline.Instance
	out io.Writer
}

func NewReadlinePrompter(in io.ReadCloser, out io.Writer) (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		HistoryLimit:    200,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlinePrompter{rl: rl, out: out}, nil
}

// Prompt shows label and waits for a line. Interrupt and end of input yield ErrQuit.
// Only the last line of label becomes the editable prompt.
func (p *ReadlinePrompter) Prompt(label string) (string, error) {
	if i := strings.LastIndexByte(label, '\n'); i >= 0 {
		_, _ = io.WriteString(p.out, label[:i+1])
		label = label[i+1:]
	}
	p.rl.SetPrompt(label)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrQuit
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}
