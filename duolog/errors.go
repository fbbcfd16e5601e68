package duolog

import "errors"

// ErrInvalidArgument reports a missing required argument, such as a nil
// logger, a nil stream, or an empty file path. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("duolog: invalid argument")
