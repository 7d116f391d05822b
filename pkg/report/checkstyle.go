package report

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

const (
	// ConflictSource tags checkstyle entries for unresolved conflict blocks
	ConflictSource = "unconflict.conflict"
	// MalformedSource tags checkstyle entries for files that failed to scan
	MalformedSource = "unconflict.malformed"

	checkstyleVersion = "8.0"
)

// CheckstyleRenderer writes checkstyle XML: one <file> per report, one
// <error> per conflict block at its header line.
type CheckstyleRenderer struct {
	output io.Writer
}

// Render implements Renderer
func (r *CheckstyleRenderer) Render(reports []FileReport) error {
	doc := Checkstyle(reports)
	if _, err := doc.WriteTo(r.output); err != nil {
		return err
	}
	return nil
}

// Checkstyle builds the checkstyle document for reports
func Checkstyle(reports []FileReport) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", checkstyleVersion)

	for _, rep := range reports {
		file := root.CreateElement("file")
		file.CreateAttr("name", rep.Path)

		if rep.Failed() {
			line := rep.ErrorLine
			if line == 0 {
				line = 1
			}
			addError(file, line, rep.Error, MalformedSource)
			continue
		}

		for _, blk := range rep.Blocks {
			msg := fmt.Sprintf("unresolved merge conflict (%s)", describe(blk))
			addError(file, blk.HeaderLine, msg, ConflictSource)
		}
	}

	doc.Indent(2)
	return doc
}

func addError(parent *etree.Element, line int, message, source string) {
	e := parent.CreateElement("error")
	e.CreateAttr("line", fmt.Sprint(line))
	e.CreateAttr("column", "1")
	e.CreateAttr("severity", "error")
	e.CreateAttr("message", message)
	e.CreateAttr("source", source)
}

func describe(blk BlockReport) string {
	mine, theirs := blk.labels()
	return fmt.Sprintf("%s: %s, %s: %s",
		mine, plural(blk.MineLines, "line"), theirs, plural(blk.TheirsLines, "line"))
}
