// Package record reads and writes record files: plain text files holding one
// identifier per line, named <category>_<YYYY>_<MM>_<DD>.txt.
//
// The package assumes a single writer per directory. Nothing guards against
// two processes scanning the same directory and then both writing; operators
// must run the tool sequentially.
package record
