package wav

import "errors"

var (
	// ErrNotFound reports that a source file could not be opened for reading.
	ErrNotFound = errors.New("wav: file not found")
	// ErrUnwritable reports that a sink file could not be opened for writing.
	ErrUnwritable = errors.New("wav: file can not be opened for writing")
	// ErrInvalidArgument reports a payload replacement whose length does not
	// match the current payload.
	ErrInvalidArgument = errors.New("wav: invalid argument")
	// ErrMalformedHeader reports a header that is truncated or whose fields
	// make the duration undefined.
	ErrMalformedHeader = errors.New("wav: malformed header")
)
