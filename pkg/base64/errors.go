package base64

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when the data characters leave a single
// 6-bit group after the last complete quantum. No whole byte can be
// recovered from it.
var ErrInvalidLength = errors.New("base64: invalid length")

// InvalidByteError reports a byte outside of the accepted input set
// together with its absolute position in the input.
type InvalidByteError struct {
	Byte   byte
	Offset int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("base64: invalid character %q (0x%02x) at position %d", e.Byte, e.Byte, e.Offset)
}
