// Package resolve implements the core operation: read a conflicted file,
// keep the sides a policy selects from every conflict block, and write the
// result back in one whole-file replace.
package resolve
