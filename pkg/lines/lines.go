// Package lines converts between file bytes and line sequences.
//
// Splitting follows "read all lines" semantics: \r\n, \n and \r all end a
// line, and a terminator at the very end of the input does not start an
// extra empty line.
package lines

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
)

// Ending is a line terminator
type Ending string

const (
	LF   Ending = "\n"
	CRLF Ending = "\r\n"
	CR   Ending = "\r"
)

// Name returns the config spelling of the ending
func (e Ending) Name() string {
	switch e {
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	case CR:
		return "cr"
	default:
		return "none"
	}
}

// Platform returns the native terminator for the running OS
func Platform() Ending {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Ending {
	if goos == "windows" {
		return CRLF
	}
	return LF
}

// Split breaks data into lines without terminators
func Split(data []byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			out = append(out, string(data[start:i]))
			start = i + 1
		case '\r':
			out = append(out, string(data[start:i]))
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(data) {
		out = append(out, string(data[start:]))
	}
	return out
}

// Detect returns the most frequent terminator in data, or "" if data has none.
// Ties prefer LF, then CRLF.
func Detect(data []byte) Ending {
	var lf, crlf, cr int
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			lf++
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		}
	}

	switch {
	case lf == 0 && crlf == 0 && cr == 0:
		return ""
	case lf >= crlf && lf >= cr:
		return LF
	case crlf >= cr:
		return CRLF
	default:
		return CR
	}
}

// HasFinalTerminator reports whether data ends with a line terminator
func HasFinalTerminator(data []byte) bool {
	return bytes.HasSuffix(data, []byte("\n")) || bytes.HasSuffix(data, []byte("\r"))
}

// Join concatenates lines with the given ending, optionally terminating the last line
func Join(lines []string, ending Ending, finalNewline bool) []byte {
	text := strings.Join(lines, string(ending))
	if finalNewline && len(lines) > 0 {
		text += string(ending)
	}
	return []byte(text)
}

// ParseEnding maps a configured line_ending value to a terminator.
// "preserve" picks the dominant terminator of input, falling back to the
// platform one when input has none.
func ParseEnding(name string, input []byte) (Ending, error) {
	switch strings.ToLower(name) {
	case "", "platform":
		return Platform(), nil
	case "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	case "preserve":
		if detected := Detect(input); detected != "" {
			return detected, nil
		}
		return Platform(), nil
	default:
		return "", fmt.Errorf("unknown line ending %q (want platform, lf, crlf or preserve)", name)
	}
}

// ValidEndingNames lists the accepted line_ending values
var ValidEndingNames = []string{"platform", "lf", "crlf", "preserve"}
