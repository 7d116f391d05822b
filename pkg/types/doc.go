// Package types defines the data model shared by the scanner, the resolver and
// the commands: conflict markers, conflict blocks, documents and resolution
// policies, plus the filesystem interface used at the I/O boundary.
package types
