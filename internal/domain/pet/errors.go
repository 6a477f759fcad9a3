package pet

import "errors"

var (
	ErrPetNotFound    = errors.New("pet not found")
	ErrPetHasEstadias = errors.New("pet has boarding stays and cannot be deleted")
)
