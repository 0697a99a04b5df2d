// Package view renders the coordinator's listings as human-readable text.
//
// Headings and labels are styled with lipgloss. Styles are bound to the
// destination writer, so output to a file, a pipe or a test buffer is plain
// text while a terminal gets colour.
package view
