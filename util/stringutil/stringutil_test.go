package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestStringFromBytes(t *testing.T) {
	assert.Equal(t, "a\nb\nc", StringFromBytes([]byte("\xEF\xBB\xBFa\r\nb\rc")))
	assert.Equal(t, "plain", StringFromBytes([]byte("plain")))
}

func TestNonEmptyLines(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, NonEmptyLines("  one \n\n\t\ntwo\n"))
	lines := NonEmptyLines("\n \n")
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestIsUrl(t *testing.T) {
	assert.True(t, IsUrl("http://localhost:11434"))
	assert.True(t, IsUrl("https://example.com"))
	assert.False(t, IsUrl("localhost:11434"))
}

func TestDecodeText(t *testing.T) {
	output, err := DecodeText([]byte{'c', 'a', 'f', 0xE9}, "ISO-8859-1", false)
	require.NoError(t, err)
	assert.Equal(t, "café", string(output))

	// "日本" in Shift_JIS
	output, err = DecodeText([]byte{0x93, 0xFA, 0x96, 0x7B}, "Shift_JIS", false)
	require.NoError(t, err)
	assert.Equal(t, "日本", string(output))

	_, err = DecodeText([]byte("abc"), "KOI8-R", false)
	assert.Error(t, err)
}

func TestDecodeAutoUtf8(t *testing.T) {
	input := []byte("snow on neon rooftops ❄")
	output, charset, err := DecodeAuto(input)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", charset)
	assert.Equal(t, input, output)
}

func TestDecodeAutoShiftJis(t *testing.T) {
	text := "雪の夜に東京のネオンが光っている\nこれはとても静かな冬の町です\n"
	input, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)

	output, charset, err := DecodeAuto(input)
	require.NoError(t, err)
	assert.Equal(t, "Shift_JIS", charset)
	assert.Equal(t, text, string(output))
}

func TestDecodeAutoLowConfidence(t *testing.T) {
	_, _, err := DecodeAuto([]byte{0x81, 0x81, 0x81, 0x81})
	assert.ErrorContains(t, err, "can not get text encoding")
}
