// Package filesystem provides the implementations of types.FS used at the
// read/write boundary, and the whole-file replace used to rewrite a resolved
// file. Apply runs the backup and the replace as one synthfs pipeline.
//
// NewOS is used by the command line; NewAferoFS wraps any afero.Fs and is
// what tests use with an in-memory filesystem.
package filesystem
