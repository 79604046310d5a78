package httputil

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
)

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and a message for humans.
type ErrorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes err as an [ErrorBody] and returns the status used.
func WriteError(w http.ResponseWriter, err error) int {
	status := errors.HTTPStatus(err)
	_ = WriteJSON(w, status, NewErrorBody(err))
	return status
}

// NewErrorBody builds the error payload for err. Errors without a code are
// reported as INTERNAL_ERROR with a generic message.
func NewErrorBody(err error) ErrorBody {
	code := errors.GetCode(err)
	if code == "" || code == errors.ErrCodeInternal {
		return ErrorBody{Error: ErrorDetail{Code: errors.ErrCodeInternal, Message: "internal server error"}}
	}
	return ErrorBody{Error: ErrorDetail{Code: code, Message: errors.UserMessage(err)}}
}

// DecodeJSON decodes the request body into v. Bodies over maxBytes, unknown
// fields, and trailing data are rejected with ErrCodeInvalidInput.
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case stderrors.As(err, &tooLarge):
			return errors.New(errors.ErrCodeInvalidInput, "request body too large (max %d bytes)", tooLarge.Limit)
		case stderrors.Is(err, io.EOF):
			return errors.New(errors.ErrCodeInvalidInput, "request body is empty")
		default:
			return errors.New(errors.ErrCodeInvalidInput, "invalid JSON body: %v", err)
		}
	}
	if dec.More() {
		return errors.New(errors.ErrCodeInvalidInput, "request body must hold a single JSON object")
	}
	return nil
}
