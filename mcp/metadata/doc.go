// Package metadata defines the annotation keys application authors use to
// rename, describe or exclude commands, and the table the scanner builds from
// them once per tree.
package metadata
