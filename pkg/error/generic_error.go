package error

// GenericError is implemented by every typed error in this package so the
// recovery middleware can map a panic to an HTTP status and stable code.
type GenericError interface {
	error
	ErrCode() string
	StatusCode() int
}
