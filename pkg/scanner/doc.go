// Package scanner partitions a file's lines into conflict blocks.
//
// The scanner is an explicit finite-state machine over three states:
//
//	AwaitingHeader --header--> InMine --separator--> InTheirs --footer--> AwaitingHeader
//
// Only a header line can open a block, so separator or footer text outside a
// block is ordinary content. Reaching the end of input while inside a block is
// a MALFORMED_CONFLICT error and no partial document is returned.
package scanner
