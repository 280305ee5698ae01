// Package edgeio reads and writes the plain-text edge-list format used to
// load a starting graph and persist the tournament's best result: one edge
// per line, "<u> <v>\n", decimal vertex IDs, no header, no comments.
//
// Like core and lowerbound, this package is built directly on the standard
// library (bufio, os, fmt) rather than a third-party dependency: a flat
// two-column text format has no parser or encoding concern substantial
// enough to justify reaching for a serialization library, and nothing
// elsewhere in the dependency set claims this format either.
package edgeio
