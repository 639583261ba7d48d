package error

import "net/http"

// GenerationError wraps upstream speech synthesis failures. The cache is
// never mutated when one of these is returned.
type GenerationError string

func (err GenerationError) Error() string {
	return string(err)
}

func (err GenerationError) ErrCode() string {
	return "GENERATION_ERROR"
}

func (err GenerationError) StatusCode() int {
	return http.StatusBadGateway
}
