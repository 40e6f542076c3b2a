// Package complete decodes numbers from a buffer that holds the entire input.
//
// Its parsers mirror package streaming one for one. They never report
// Incomplete: a fixed-width read that runs short fails with a recoverable
// error of kind types.KindEOF, and the end of the buffer terminates digit
// runs, so "12" decodes as a whole literal without a trailing delimiter.
package complete

const final = true
