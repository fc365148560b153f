package gateway

import (
	"bytes"

	"github.com/go-resty/resty/v2"
	"github.com/ndtruong/vango-client/models"
)

// RequestOption customises a single outbound request before dispatch.
type RequestOption func(*resty.Request)

// WithQuery sets query-string parameters on the request.
func WithQuery(params map[string]string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParams(params)
	}
}

// WithPathParam substitutes a {name} placeholder segment in the endpoint
// path template with value before dispatch.
func WithPathParam(name, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetPathParam(name, value)
	}
}

// WithContentType overrides the Gateway's default JSON content type for one
// call.
func WithContentType(contentType string) RequestOption {
	return func(r *resty.Request) {
		r.SetHeader("Content-Type", contentType)
	}
}

// WithMultipart encodes the request as a multipart form body carrying the
// given fields and files. resty replaces the default JSON content type with
// the multipart one, boundary included.
func WithMultipart(fields map[string]string, files ...models.FileUpload) RequestOption {
	return func(r *resty.Request) {
		if len(fields) > 0 {
			r.SetMultipartFormData(fields)
		}
		for _, f := range files {
			r.SetFileReader(f.FieldName, f.FileName, bytes.NewReader(f.Content))
		}
	}
}
