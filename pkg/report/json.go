package report

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes the reports and their summary as one indented document
type JSONRenderer struct {
	output io.Writer
}

type jsonDocument struct {
	Files   []FileReport `json:"files"`
	Summary Summary      `json:"summary"`
}

// Render implements Renderer
func (r *JSONRenderer) Render(reports []FileReport) error {
	if reports == nil {
		reports = []FileReport{}
	}
	encoder := json.NewEncoder(r.output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonDocument{Files: reports, Summary: Summarize(reports)})
}
