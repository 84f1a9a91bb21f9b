package console

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"time"

	"semdiff/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestFloatRepromptsUntilNumeric(t *testing.T) {
	p, out := newTestPrompter("abc\nNaN\n\n  7.5 \n")

	v, err := p.Float(context.Background(), "Please enter the maximum rating limit:")
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	assert.Equal(t, 4, strings.Count(out.String(), "Please enter the maximum rating limit:"))
	assert.Equal(t, 3, strings.Count(out.String(), numericHint))
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		hints    int
	}{
		{"yes", "y\n", true, 0},
		{"no", "n\n", false, 0},
		{"upper case", "Y\n", true, 0},
		{"retries", "maybe\nyes\n\nn\n", false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			ok, err := p.YesNo(context.Background(), "Do you want to add another material? (y/n)")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.hints, strings.Count(out.String(), yesNoHint))
		})
	}
}

func TestLineTrims(t *testing.T) {
	p, out := newTestPrompter("  Wood \r\n")
	answer, err := p.Line(context.Background(), "Please enter a material.")
	require.NoError(t, err)
	assert.Equal(t, "Wood", answer)
	assert.Equal(t, "Please enter a material.\n", out.String())
}

func TestEOFIsInputClosed(t *testing.T) {
	p, _ := newTestPrompter("nope\n")
	_, err := p.YesNo(context.Background(), "Continue? (y/n)")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInputClosed, errors.GetCode(err))
	assert.True(t, stderrors.Is(err, io.EOF))
}

func TestCancelledContext(t *testing.T) {
	p, _ := newTestPrompter("5\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Float(ctx, "Please enter the minimum rating limit:")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCancelWhileWaitingForAnswer(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	p := NewPrompter(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Float(ctx, "Please enter the minimum rating limit:")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Float did not return after cancellation")
	}

	// A line typed after the cancelled prompt still reaches the next one.
	go func() { _, _ = io.WriteString(pw, "3\n") }()
	v, err := p.Float(context.Background(), "Please enter the minimum rating limit:")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestLongLineIsRepromptedNotClosed(t *testing.T) {
	p, out := newTestPrompter(strings.Repeat("x", 100*1024) + "\n7\n")

	v, err := p.Float(context.Background(), "Please enter the maximum rating limit:")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, 1, strings.Count(out.String(), numericHint))
}
