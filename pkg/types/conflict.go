package types

// Block is one mine/theirs conflict together with the unconflicted context
// that precedes it. After is only ever populated on the last block of a
// Document, once the whole input has been scanned.
type Block struct {
	Before []string
	Mine   []string
	Theirs []string
	After  []string

	// 1-based line numbers of the marker lines in the source
	HeaderLine    int
	SeparatorLine int
	FooterLine    int

	// Annotations found after the header and footer markers
	MineLabel   string
	TheirsLabel string
}

// Document is the ordered list of conflicts found in one file
type Document struct {
	Blocks []Block
}

// Empty reports whether no conflict was found
func (d Document) Empty() bool {
	return len(d.Blocks) == 0
}

// Len returns the number of conflicts
func (d Document) Len() int {
	return len(d.Blocks)
}

// Last returns the final block, or nil for an empty document
func (d Document) Last() *Block {
	if len(d.Blocks) == 0 {
		return nil
	}
	return &d.Blocks[len(d.Blocks)-1]
}

// ConflictedLines counts the lines inside conflict sections, marker lines excluded
func (d Document) ConflictedLines() int {
	n := 0
	for _, b := range d.Blocks {
		n += len(b.Mine) + len(b.Theirs)
	}
	return n
}
