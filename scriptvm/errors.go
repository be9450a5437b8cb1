package scriptvm

import "errors"

var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrPermissionDenied  = errors.New("permission denied")
)
