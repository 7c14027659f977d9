package explore

import "errors"

var (
	ErrFetchFailed   = errors.New("failed to fetch image")
	ErrMalformedInfo = errors.New("malformed image info")
)
