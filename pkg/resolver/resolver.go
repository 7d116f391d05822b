// Package resolver rebuilds a file's lines from a scanned Document and a
// resolution policy. It is a pure transformation with no I/O.
package resolver

import (
	"github.com/arthur-debert/unconflict/pkg/types"
)

// side names one of the two competing sections of a block
type side int

const (
	mine side = iota
	theirs
)

// selection is the resolution table: for every policy, which sides survive
// and in which order.
var selection = map[types.Policy][]side{
	types.PolicyMineThenTheirs: {mine, theirs},
	types.PolicyTheirsThenMine: {theirs, mine},
	types.PolicyMineOnly:       {mine},
	types.PolicyTheirsOnly:     {theirs},
	types.PolicyNeither:        {},
}

// Select returns the surviving content of one conflict under policy p.
// An unknown policy keeps nothing; callers parse policies with
// types.ParsePolicy, which never yields one.
func Select(m, t []string, p types.Policy) []string {
	order := selection[p]
	out := make([]string, 0, len(m)+len(t))
	for _, s := range order {
		switch s {
		case mine:
			out = append(out, m...)
		case theirs:
			out = append(out, t...)
		}
	}
	return out
}

// Resolve concatenates, for every block in order, its Before context and the
// selected content, followed by the last block's After context.
func Resolve(doc types.Document, p types.Policy) []string {
	out := make([]string, 0, outputCap(doc))
	for _, b := range doc.Blocks {
		out = append(out, b.Before...)
		out = append(out, Select(b.Mine, b.Theirs, p)...)
	}
	if last := doc.Last(); last != nil {
		out = append(out, last.After...)
	}
	return out
}

// Stats summarises what a resolution keeps and drops
type Stats struct {
	Conflicts    int
	ContextLines int
	KeptLines    int
	DroppedLines int
}

// Summarize computes Stats for resolving doc with p
func Summarize(doc types.Document, p types.Policy) Stats {
	var s Stats
	s.Conflicts = doc.Len()
	for _, b := range doc.Blocks {
		s.ContextLines += len(b.Before)
		kept := len(Select(b.Mine, b.Theirs, p))
		s.KeptLines += kept
		s.DroppedLines += len(b.Mine) + len(b.Theirs) - kept
	}
	if last := doc.Last(); last != nil {
		s.ContextLines += len(last.After)
	}
	return s
}

func outputCap(doc types.Document) int {
	n := 0
	for _, b := range doc.Blocks {
		n += len(b.Before) + len(b.Mine) + len(b.Theirs) + len(b.After)
	}
	return n
}
