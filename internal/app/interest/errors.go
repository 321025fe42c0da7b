package interest

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidPrincipal   = errors.New("invalid principal")
	ErrInvalidRate        = errors.New("invalid rate")
	ErrInvalidYears       = errors.New("invalid years")
	ErrInvalidCompounding = errors.New("invalid compounding frequency")
)
