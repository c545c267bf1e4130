package pidstore

import "errors"

// Loader errors.
var (
	ErrEmptyStore            = errors.New("pid store is empty")
	ErrDuplicatePID          = errors.New("duplicate pid")
	ErrDuplicateManufacturer = errors.New("duplicate manufacturer")
	ErrPIDOutOfRange         = errors.New("pid value outside allowed range")
	ErrInvalidField          = errors.New("invalid field definition")
	ErrUnknownFieldType      = errors.New("unknown field type")
	ErrUnknownSubDeviceRange = errors.New("unknown sub-device range")
)
