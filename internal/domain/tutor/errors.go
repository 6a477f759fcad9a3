package tutor

import "errors"

var (
	ErrTutorNotFound    = errors.New("tutor not found")
	ErrCPFAlreadyExists = errors.New("cpf already registered")
	ErrTutorsNotFound   = errors.New("one or more tutors not found")
)
