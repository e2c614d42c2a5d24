// Package tool defines the flat tool naming scheme and the immutable
// execution plan derived for every exposed command, including the positional
// argument order and the reconstruction of command-line tokens from a
// parameter mapping.
package tool
