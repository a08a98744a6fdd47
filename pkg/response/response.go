package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"product-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

const (
	ErrorNotFound         = "Not Found"
	ErrorValidation       = "Validation Error"
	ErrorBadRequest       = "Bad Request"
	ErrorMethodNotAllowed = "Method Not Allowed"
	ErrorInternal         = "Internal Server Error"

	// MessageInternal is the only message a caller ever sees for a 500.
	MessageInternal = "An unexpected error occurred. Please try again later."
)

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Path      string            `json:"path"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, r *http.Request, statusCode int, errorText, message string) {
	JSON(w, statusCode, ErrorResponse{
		Timestamp: time.Now(),
		Status:    statusCode,
		Error:     errorText,
		Message:   message,
		Path:      r.URL.Path,
	})
}

func ValidationError(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     ErrorValidation,
		Errors:    errors,
		Path:      r.URL.Path,
	})
}

func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusBadRequest, ErrorBadRequest, message)
}

func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, r, http.StatusNotFound, ErrorNotFound, message)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusMethodNotAllowed, ErrorMethodNotAllowed, "Method "+r.Method+" is not supported for this resource")
}

func InternalServerError(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusInternalServerError, ErrorInternal, MessageInternal)
}

// HandleError translates err into the matching envelope. Errors that are not
// one of the apperror types are logged and reported as an opaque 500.
func HandleError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	var (
		notFound   *apperror.NotFoundError
		validation *apperror.ValidationError
		badRequest *apperror.BadRequestError
	)

	switch {
	case errors.As(err, &notFound):
		NotFound(w, r, notFound.Error())
	case errors.As(err, &validation):
		ValidationError(w, r, validation.Fields)
	case errors.As(err, &badRequest):
		BadRequest(w, r, badRequest.Message)
	default:
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Errorf("An unexpected error occurred: %+v", err)
		InternalServerError(w, r)
	}
}
