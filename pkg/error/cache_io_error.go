package error

import "net/http"

// CacheIOError reports a filesystem failure while persisting an artifact or
// the metadata index. Reads self-heal instead of raising this.
type CacheIOError string

func (err CacheIOError) Error() string {
	return string(err)
}

func (err CacheIOError) ErrCode() string {
	return "CACHE_IO_ERROR"
}

func (err CacheIOError) StatusCode() int {
	return http.StatusInternalServerError
}
