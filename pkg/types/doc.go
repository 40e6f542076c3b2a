// Package types defines the shared vocabulary of the numkit parsers: the
// three-way parse outcome, byte order selection and 128-bit value types.
//
// Every parser in this module has the shape
//
//	func(input []byte) (rest []byte, value T, err error)
//
// A nil err means the value was decoded and rest is the unconsumed input.
// A non-nil err is always a *Error whose Severity tells the caller what to do:
//
//   - SeverityError: the input is not what this parser expects; try another.
//   - SeverityFailure: the input committed to this grammar and then broke it.
//   - SeverityIncomplete: the input is a valid prefix; supply Needed more
//     bytes and call the parser again from the same starting offset.
//
// Design goals:
//   - Zero-copy: parsers borrow sub-slices of the caller's buffer.
//   - Stateless: every call is a pure function of its input.
//   - Never panic on malformed input.
package types
