package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no terminator", "a", []string{"a"}},
		{"single line with terminator", "a\n", []string{"a"}},
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
		{"blank lines kept", "a\n\n\nb\n", []string{"a", "", "", "b"}},
		{"only terminator", "\n", []string{""}},
		{"two terminators", "\n\n", []string{"", ""}},
		{"trailing whitespace kept", "a  \n\tb", []string{"a  ", "\tb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split([]byte(tt.input)))
		})
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, Ending(""), Detect([]byte("no terminator")))
	assert.Equal(t, LF, Detect([]byte("a\nb\n")))
	assert.Equal(t, CRLF, Detect([]byte("a\r\nb\r\nc\n")))
	assert.Equal(t, CR, Detect([]byte("a\rb\r")))
	assert.Equal(t, LF, Detect([]byte("a\nb\r\n")), "ties prefer LF")
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a\nb", string(Join([]string{"a", "b"}, LF, false)))
	assert.Equal(t, "a\r\nb\r\n", string(Join([]string{"a", "b"}, CRLF, true)))
	assert.Equal(t, "", string(Join(nil, LF, true)))
	assert.Equal(t, "\n", string(Join([]string{""}, LF, true)))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	input := "one\ntwo\n\nfour"
	assert.Equal(t, input, string(Join(Split([]byte(input)), LF, false)))
}

func TestHasFinalTerminator(t *testing.T) {
	assert.True(t, HasFinalTerminator([]byte("a\n")))
	assert.True(t, HasFinalTerminator([]byte("a\r\n")))
	assert.True(t, HasFinalTerminator([]byte("a\r")))
	assert.False(t, HasFinalTerminator([]byte("a")))
	assert.False(t, HasFinalTerminator(nil))
}

func TestPlatform(t *testing.T) {
	assert.Equal(t, CRLF, platformFor("windows"))
	assert.Equal(t, LF, platformFor("linux"))
	assert.Equal(t, LF, platformFor("darwin"))
}

func TestParseEnding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Ending
	}{
		{"platform", "", Platform()},
		{"", "", Platform()},
		{"lf", "a\r\n", LF},
		{"CRLF", "a\n", CRLF},
		{"preserve", "a\r\nb\r\n", CRLF},
		{"preserve", "single line", Platform()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnding(tt.name, []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseEnding("dos", nil)
	assert.Error(t, err)
}

func TestEndingName(t *testing.T) {
	assert.Equal(t, "lf", LF.Name())
	assert.Equal(t, "crlf", CRLF.Name())
	assert.Equal(t, "cr", CR.Name())
	assert.Equal(t, "none", Ending("").Name())
}
