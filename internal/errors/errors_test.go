package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := InvalidInput("maximum below minimum")
	wrapped := Wrap(base, "failed to read range")

	assert.Equal(t, CodeInvalidInput, GetCode(wrapped))
	assert.Equal(t, "failed to read range: maximum below minimum", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(io.ErrUnexpectedEOF, "reading %s", "session.yaml")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, io.ErrUnexpectedEOF))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("export Warmth: %w", ExportError("chart", io.ErrShortWrite))

	assert.Equal(t, CodeExportError, GetCode(err))
	assert.True(t, IsAppError(err))
	assert.Equal(t, "UNKNOWN", GetCode(io.EOF))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeNotFound, io.EOF)
	assert.Equal(t, CodeNotFound, GetCode(err))
	assert.Equal(t, "EOF", err.Error())

	recoded := WithCode(CodeInputClosed, ConfigInvalid("bad"))
	assert.Equal(t, CodeInputClosed, GetCode(recoded))
}
