package codec

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when a buffer handed to a decoder does not have
// the exact record size.
var ErrMalformedRecord = errors.New("malformed record")

// SizeError describes a buffer of the wrong length. It matches ErrMalformedRecord
// with errors.Is.
type SizeError struct {
	Kind string
	Got  int
	Want int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %s record must be exactly %d bytes, got %d", ErrMalformedRecord, e.Kind, e.Want, e.Got)
}

// Is reports whether target is ErrMalformedRecord.
func (e *SizeError) Is(target error) bool {
	return target == ErrMalformedRecord
}
