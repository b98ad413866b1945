// Package rewrite relocates clip bindings after nodes move.
//
// A Mapping holds old path prefixes and their replacements. A binding path
// matches an entry when it equals the old prefix or lies below it; the most
// specific matching entry wins. Only the binding path changes; curve data is
// left as it was.
package rewrite
