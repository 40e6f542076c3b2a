// Package streaming decodes numbers from a buffer that may be a prefix of a
// longer stream.
//
// When a parser runs out of bytes before it can decide, it returns an error
// for which types.IsIncomplete reports true along with a lower bound on the
// number of extra bytes needed. The caller appends more data and calls the
// parser again with the whole buffer. Digit runs that reach the end of the
// buffer are Incomplete because the next chunk could extend them; terminate
// text input with a non-digit byte, or use package complete, when the buffer
// is known to be whole.
package streaming

const final = false
