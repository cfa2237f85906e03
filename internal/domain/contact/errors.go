package contact

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrContactNotFound    = errors.New("contact not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyDomainTaken = errors.New("company domain already taken")
	ErrImportRunNotFound  = errors.New("import run not found")
)
