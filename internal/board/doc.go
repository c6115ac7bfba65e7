// Package board provides the filesystem-backed board input source and
// output sink the resolver reads declarations from and writes generated
// artifacts to.
//
// Layout, relative to the firmware root:
//
//	<boards>/<board>/<connectors>/*.yaml   declaration files, sorted by name
//	<meta header>                          path given by a file's "meta" key
//	<boards>/<board>/<connectors>/<artifact files>
//
// Artifacts are written through scoped writers: content goes to a temporary
// file that only replaces the target on Commit, so a failed run never
// leaves a half-written artifact behind.
package board
