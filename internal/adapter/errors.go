package adapter

import "errors"

var (
	ErrEmptySource  = errors.New("page source is empty")
	ErrEmptyPage    = errors.New("page is empty")
	ErrPageTooLarge = errors.New("page exceeds size limit")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("page not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
