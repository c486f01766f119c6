// Request parsing utilities for the dataset import endpoint. Uploads arrive
// either as a multipart "file" part or as a pasted "csv" form field.

package http

import (
	"io"
	"net/http"
	"strings"
)

// maxUploadBytes caps the size of an uploaded dataset (1 MiB).
const maxUploadBytes = 1 << 20

// RequireMethod checks if the request method matches the expected method(s).
// Returns an error response builder if the method doesn't match.
func RequireMethod(r *http.Request, methods ...string) *HTMXResponseBuilder {
	for _, m := range methods {
		if r.Method == m {
			return nil
		}
	}
	return MethodNotAllowedError(strings.Join(methods, ", "))
}

// RequirePOST is a convenience function for POST-only handlers.
func RequirePOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodPost)
}

// ExtractDatasetUpload returns a reader over the uploaded CSV content.
// Multipart uploads take the "file" part; url-encoded forms take the "csv"
// field. The caller owns closing the returned reader.
func ExtractDatasetUpload(r *http.Request) (io.ReadCloser, *HTMXResponseBuilder) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, BadRequestError("Upload too large or malformed")
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, BadRequestError("Missing CSV file upload")
		}
		return file, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, BadRequestError("Invalid request format")
	}
	csv := r.PostFormValue("csv")
	if strings.TrimSpace(csv) == "" {
		return nil, BadRequestError("Missing CSV content")
	}
	return io.NopCloser(strings.NewReader(csv)), nil
}
