// Package kmpviz animates a naive string-matching automaton.
//
// The state tracking is in package 'core', the SVG layout is in
// 'diagram', and the page and websocket service are in 'service'.
// Command-line tools are in `cmd`.
package kmpviz
