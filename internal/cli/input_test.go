package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  Buy milk \n"), "Title", &out)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got)
	assert.Equal(t, "Title\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Title", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Title", &out)
	require.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"terminator", "a\nb\n.\nignored\n", "a\nb"},
		{"keeps blank lines", "first\n\nsecond\n.\n", "first\n\nsecond"},
		{"keeps indentation", "  indented\n\tcode\n.\n", "  indented\n\tcode"},
		{"trailing blank lines dropped", "a\n\n\n.\n", "a"},
		{"crlf", "a\r\nb\r\n.\r\n", "a\nb"},
		{"eof without terminator", "a\n\nb", "a\n\nb"},
		{"empty", ".\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tt.in), "Notes", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.want, Confirm(rdr(tt.in), "Delete?", &out))
			assert.Contains(t, out.String(), "Delete? (y/N)")
		})
	}
}
