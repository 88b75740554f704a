package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(input string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(strings.NewReader(input), &out), &out
}

func TestSession_Prompt(t *testing.T) {
	s, out := newTestSession("Juan\r\n")

	line, err := s.Prompt("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Juan", line)
	assert.Equal(t, "Name: ", out.String(), "prompt has no trailing newline")

	_, err = s.Prompt("Again: ")
	assert.ErrorIs(t, err, io.EOF)
	assert.NotEmpty(t, s.ID)
}

func TestSession_PromptInt(t *testing.T) {
	s, _ := newTestSession(" 42 \nabc\n")

	n, err := s.PromptInt("> ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = s.PromptInt("> ")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestSession_PromptFloat(t *testing.T) {
	s, _ := newTestSession("1.95\ntall\n")

	f, err := s.PromptFloat("> ")
	require.NoError(t, err)
	assert.InDelta(t, 1.95, f, 1e-9)

	_, err = s.PromptFloat("> ")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestSession_PromptNonEmpty(t *testing.T) {
	s, out := newTestSession("\n   \n Maria \n")

	name, err := s.PromptNonEmpty("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Maria", name)
	assert.Equal(t, 3, strings.Count(out.String(), "Name: "))
}

func TestSession_PromptIntUntil(t *testing.T) {
	s, out := newTestSession("x\n-1\n5\n")

	n, err := s.PromptIntUntil("ID: ", "not a number", func(n int) string {
		if n <= 0 {
			return "must be positive"
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "ID: not a number\nID: must be positive\nID: ", out.String())
}

func TestSession_PromptIntUntil_EOF(t *testing.T) {
	s, _ := newTestSession("x\n")

	_, err := s.PromptIntUntil("ID: ", "bad", func(int) string { return "" })
	assert.ErrorIs(t, err, io.EOF)
}
