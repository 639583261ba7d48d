package error

import "net/http"

// ParseError covers document extraction failures and unsupported formats.
type ParseError string

func (err ParseError) Error() string {
	return string(err)
}

func (err ParseError) ErrCode() string {
	return "PARSE_ERROR"
}

func (err ParseError) StatusCode() int {
	return http.StatusUnprocessableEntity
}
