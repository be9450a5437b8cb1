package programs

import "errors"

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrCallDepth      = errors.New("call depth exceeded")
)
