package cmd

import "errors"

// ErrInvalidFlag is returned for flag values outside their accepted range
var ErrInvalidFlag = errors.New("cmd: invalid flag value")
