// Package style holds the terminal styles used by unconflict's reports and
// messages.
//
// Styles are declared in the embedded styles.yaml under semantic names
// (Title, Path, Mine, Theirs, ...) backed by adaptive colors. Code refers to
// them by name through Get or Render, or inline through markup tags:
//
//	[Mine]HEAD[/Mine] kept, [Muted]3 lines dropped[/Muted]
package style
