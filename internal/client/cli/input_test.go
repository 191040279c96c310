package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

// fakeTerminal makes GetPassword take the no-echo branch.
func fakeTerminal(t *testing.T, read func(int) ([]byte, error)) {
	t.Helper()
	oldRead, oldIs := readPassword, isTerminal
	readPassword = read
	isTerminal = func(int) bool { return true }
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldIs })
}

func pipedStdin(t *testing.T) {
	t.Helper()
	old := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = old })
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double enter", "a\nb\n\n\n", "a\nb"},
		{"crlf", "a\r\nb\r\n\r\n", "a\nb"},
		{"eof without blank line", "a\nb", "a\nb"},
		{"immediate blank line", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tt.input), "Enter text", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPassword_Terminal(t *testing.T) {
	fakeTerminal(t, func(int) ([]byte, error) { return []byte("s3cret"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	fakeTerminal(t, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Password", &out)
	require.EqualError(t, err, "boom")
}

func TestGetPassword_Piped(t *testing.T) {
	pipedStdin(t)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("p@ss word\r\nnext\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "p@ss word", string(pw))

	pw, err = GetPassword(rdr("tail"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "tail", string(pw))

	_, err = GetPassword(rdr(""), "Password", &out)
	require.Error(t, err)
}
