package formkit

import "errors"

var (
	// ErrParsingConfig is returned when environment configuration cannot be parsed.
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrMissingContentType is returned when a form request has no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")

	// ErrUnsupportedMediaType is returned when a form request is not urlencoded form data.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
