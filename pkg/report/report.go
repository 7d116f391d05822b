// Package report describes the conflicts found in files and renders those
// descriptions as text, JSON or checkstyle XML.
package report

import (
	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// BlockReport describes one conflict block
type BlockReport struct {
	HeaderLine    int    `json:"header_line"`
	SeparatorLine int    `json:"separator_line"`
	FooterLine    int    `json:"footer_line"`
	MineLabel     string `json:"mine_label,omitempty"`
	TheirsLabel   string `json:"theirs_label,omitempty"`
	MineLines     int    `json:"mine_lines"`
	TheirsLines   int    `json:"theirs_lines"`
}

// labels returns the side labels, falling back to "mine" and "theirs" when
// the markers carried none
func (b BlockReport) labels() (string, string) {
	mine, theirs := b.MineLabel, b.TheirsLabel
	if mine == "" {
		mine = "mine"
	}
	if theirs == "" {
		theirs = "theirs"
	}
	return mine, theirs
}

// FileReport describes the scan of one file. Error is set when the file could
// not be read or its markers are malformed; Blocks is empty in that case.
type FileReport struct {
	Path      string        `json:"path"`
	Lines     int           `json:"lines"`
	Conflicts int           `json:"conflicts"`
	Blocks    []BlockReport `json:"blocks"`
	Error     string        `json:"error,omitempty"`
	ErrorCode string        `json:"error_code,omitempty"`
	// ErrorLine is the 1-based line the error refers to, 0 when unknown
	ErrorLine int `json:"error_line,omitempty"`
}

// Failed reports whether the file could not be scanned
func (r FileReport) Failed() bool {
	return r.Error != ""
}

// Summary aggregates a set of file reports
type Summary struct {
	Files      int `json:"files"`
	Conflicted int `json:"conflicted"`
	Conflicts  int `json:"conflicts"`
	Failed     int `json:"failed"`
}

// FromDocument builds the report for a successfully scanned file
func FromDocument(path string, lineCount int, doc types.Document) FileReport {
	r := FileReport{
		Path:      path,
		Lines:     lineCount,
		Conflicts: doc.Len(),
		Blocks:    make([]BlockReport, 0, doc.Len()),
	}
	for _, b := range doc.Blocks {
		r.Blocks = append(r.Blocks, BlockReport{
			HeaderLine:    b.HeaderLine,
			SeparatorLine: b.SeparatorLine,
			FooterLine:    b.FooterLine,
			MineLabel:     b.MineLabel,
			TheirsLabel:   b.TheirsLabel,
			MineLines:     len(b.Mine),
			TheirsLines:   len(b.Theirs),
		})
	}
	return r
}

// FromError builds the report for a file that could not be scanned
func FromError(path string, err error) FileReport {
	r := FileReport{
		Path:      path,
		Blocks:    []BlockReport{},
		Error:     err.Error(),
		ErrorCode: string(errors.GetErrorCode(err)),
	}
	if line, ok := errors.GetErrorDetails(err)["header_line"].(int); ok {
		r.ErrorLine = line
	}
	if lines, ok := errors.GetErrorDetails(err)["lines"].(int); ok {
		r.Lines = lines
	}
	return r
}

// Summarize totals a set of reports
func Summarize(reports []FileReport) Summary {
	s := Summary{Files: len(reports)}
	for _, r := range reports {
		if r.Failed() {
			s.Failed++
			continue
		}
		if r.Conflicts > 0 {
			s.Conflicted++
			s.Conflicts += r.Conflicts
		}
	}
	return s
}
