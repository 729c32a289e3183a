package chainnum

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDigit is returned when a character outside the expected alphabet
	// is encountered while parsing.
	ErrInvalidDigit = errors.New("chainnum: invalid digit")

	// ErrInvalidLength is returned when a fixed-width form has the wrong number
	// of digits or bytes.
	ErrInvalidLength = errors.New("chainnum: invalid length")

	// ErrOverflow is returned when a value or the result of a checked arithmetic
	// operation is outside the range of the type.
	ErrOverflow = errors.New("chainnum: overflow")

	// ErrDivisionByZero is returned by the error-returning division functions,
	// and is the panic value for Quo, Rem and QuoRem.
	ErrDivisionByZero = errors.New("chainnum: division by zero")

	// ErrNonCanonical is returned when an encoding decodes successfully but is
	// not the unique canonical form of its value.
	ErrNonCanonical = errors.New("chainnum: non-canonical encoding")

	ErrUnknownFormat       = errors.New("chainnum: unknown format specifier")
	ErrDestinationTooSmall = errors.New("chainnum: destination too small")
	ErrNegativeShift       = errors.New("chainnum: negative shift amount")

	// ErrUnknownAddressKind is returned when decoding an address discriminant
	// that is not an AddressKind.
	ErrUnknownAddressKind = errors.New("chainnum: unknown address kind")
)

// ParseError records a failed parse. Err is one of the sentinel errors above,
// so callers can use errors.Is to find out what went wrong.
type ParseError struct {
	Func  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "chainnum: " + e.Func + " " + strconv.Quote(e.Input) + ": " + strings.TrimPrefix(e.Err.Error(), "chainnum: ")
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseError copies the input, which may alias a caller's byte slice.
func parseError(fn string, input string, err error) error {
	const maxInput = 128
	if len(input) > maxInput {
		input = input[:maxInput] + "..."
	}
	return &ParseError{Func: fn, Input: strings.Clone(input), Err: err}
}
