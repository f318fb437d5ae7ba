package sealer

import "errors"

var (
	ErrMissingPassword   = errors.New("password is required for sealing")
	ErrTemplateElement   = errors.New("template is missing a required element")
	ErrParamsNotFound    = errors.New("page has no embedded unlock parameters")
	ErrInvalidPageParams = errors.New("invalid embedded unlock parameters")
)
