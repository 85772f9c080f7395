// Package feedline decides, for each input path, whether the file it names
// needs a trailing newline and appends one when it does.
//
// Evaluation is two steps. Classify looks only at metadata and settles
// missing paths, directories, symlinks and special files. Repair then reads
// the last byte of an eligible regular file and appends a single '\n' when
// that byte is anything else. Run maps both over a batch of paths, either
// sequentially or on a bounded worker pool, and returns one Outcome per path
// in input order.
package feedline
