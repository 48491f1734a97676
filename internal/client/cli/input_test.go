package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  alice  \n"))

	got, err := GetSimpleText(reader, "Username", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Equal(t, "Username\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("bob"))

	got, err := GetSimpleText(reader, "Username", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "bob", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Username", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("\ncarol\n"))

	got, err := GetTextWithDefault(reader, "Username", "alice", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Contains(t, out.String(), "Username [alice]")

	got, err = GetTextWithDefault(reader, "Username", "alice", &out)
	require.NoError(t, err)
	assert.Equal(t, "carol", got)
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"empty takes default true", "\n", true, true},
		{"empty takes default false", "\n", false, false},
		{"y", "y\n", false, true},
		{"YES", "YES\n", false, true},
		{"n overrides default", "n\n", true, false},
		{"anything else is no", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetYesNo(bufio.NewReader(strings.NewReader(tt.input)), "Remember me", tt.def, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetYesNo_Hint(t *testing.T) {
	var out bytes.Buffer
	_, _ = GetYesNo(bufio.NewReader(strings.NewReader("\n")), "Remember me", true, &out)
	assert.Contains(t, out.String(), "Remember me (Y/n)")
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) { return []byte("secret1"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	assert.Equal(t, []byte("secret1"), pw)
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	boom := errors.New("no tty")
	readPassword = func(fd int) ([]byte, error) { return nil, boom }

	pw, err := GetPassword(io.Discard, "Password")
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, pw)
}
