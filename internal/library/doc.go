// Package library inspects the downloads directory that feeds the
// generator.
//
// Scanner lists playable files and probes MP3 ID3 tags concurrently,
// backing the "scan" command. ID3Titler is the piece the generator
// reuses when display_titles_from_tags is enabled.
//
// Nothing here validates audio content; the generator keeps trusting
// its inputs either way.
package library
