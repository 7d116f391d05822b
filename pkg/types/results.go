package types

// ResolveResult holds the result of resolving one file
type ResolveResult struct {
	Path        string `json:"path"`
	Policy      Policy `json:"policy"`
	Conflicts   int    `json:"conflicts"`
	LinesBefore int    `json:"linesBefore"`
	LinesAfter  int    `json:"linesAfter"`
	BackupPath  string `json:"backupPath,omitempty"`
	// Written is false for dry runs and for files without conflicts
	Written bool `json:"written"`
	DryRun  bool `json:"dryRun"`
}

// RepoResult holds the result of resolving every unmerged file of a repository
type RepoResult struct {
	Root   string          `json:"root"`
	Policy Policy          `json:"policy"`
	Files  []ResolveResult `json:"files"`
	Staged []string        `json:"staged"`
	DryRun bool            `json:"dryRun"`
}

// Resolved returns the number of files that were rewritten, or would have
// been in a dry run
func (r *RepoResult) Resolved() int {
	n := 0
	for _, f := range r.Files {
		if f.Conflicts > 0 {
			n++
		}
	}
	return n
}
