package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"semdiff/internal/errors"
)

const (
	yesNoHint   = "Please only enter y or n!"
	numericHint = "Please only enter numeric values!"

	// maxLineBytes bounds a single answer
	maxLineBytes = 1 << 20
)

// Prompter asks questions on out and reads one answer per line from in.
// Lines are scanned on a background goroutine so a blocked read still
// returns when the context is cancelled.
type Prompter struct {
	in  io.Reader
	out io.Writer

	start sync.Once
	lines chan string
	// err is set before lines is closed
	err error
}

// NewPrompter creates a prompter over the given streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, lines: make(chan string)}
}

// Say prints an informational line
func (p *Prompter) Say(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Line asks question and returns the trimmed answer
func (p *Prompter) Line(ctx context.Context, question string) (string, error) {
	p.Say("%s", question)
	return p.read(ctx)
}

// Float asks question until the answer parses as a finite number
func (p *Prompter) Float(ctx context.Context, question string) (float64, error) {
	for {
		answer, err := p.Line(ctx, question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
		p.Say(numericHint)
	}
}

// YesNo asks question until the answer is y or n
func (p *Prompter) YesNo(ctx context.Context, question string) (bool, error) {
	for {
		answer, err := p.Line(ctx, question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		p.Say(yesNoHint)
	}
}

func (p *Prompter) read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.start.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", errors.InputClosed(p.err)
		}
		return strings.TrimSpace(line), nil
	}
}

func (p *Prompter) scan() {
	scanner := bufio.NewScanner(p.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		p.lines <- scanner.Text()
	}
	p.err = scanner.Err()
	if p.err == nil {
		p.err = io.EOF
	}
	close(p.lines)
}
