package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"product-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	return log, &buf
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("error decoding envelope: %v", err)
	}
	return body
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantMessage string
	}{
		{
			name:        "not found",
			err:         fmt.Errorf("get: %w", apperror.NewNotFound("Product", "id", 7)),
			wantStatus:  http.StatusNotFound,
			wantError:   ErrorNotFound,
			wantMessage: "Product not found with id : '7'",
		},
		{
			name:       "validation",
			err:        apperror.NewValidation(map[string]string{"name": "name is required"}),
			wantStatus: http.StatusBadRequest,
			wantError:  ErrorValidation,
		},
		{
			name:        "bad request",
			err:         apperror.NewBadRequest("Invalid product ID", errors.New("strconv")),
			wantStatus:  http.StatusBadRequest,
			wantError:   ErrorBadRequest,
			wantMessage: "Invalid product ID",
		},
		{
			name:        "unexpected",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantError:   ErrorInternal,
			wantMessage: MessageInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := newTestLogger()
			req := httptest.NewRequest(http.MethodGet, "/products/7", nil)
			w := httptest.NewRecorder()

			HandleError(w, req, log, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			body := decodeEnvelope(t, w)
			if body.Status != tt.wantStatus {
				t.Errorf("expected body status %d, got %d", tt.wantStatus, body.Status)
			}
			if body.Error != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, body.Error)
			}
			if body.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, body.Message)
			}
			if body.Path != "/products/7" {
				t.Errorf("expected path /products/7, got %q", body.Path)
			}
			if body.Timestamp.IsZero() {
				t.Error("expected timestamp to be set")
			}
		})
	}
}

func TestHandleError_ValidationFields(t *testing.T) {
	log, _ := newTestLogger()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	w := httptest.NewRecorder()

	fields := map[string]string{"name": "name is required", "price": "price must be greater than 0"}
	HandleError(w, req, log, apperror.NewValidation(fields))

	body := decodeEnvelope(t, w)
	if len(body.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(body.Errors))
	}
	if body.Errors["price"] != fields["price"] {
		t.Errorf("unexpected price message %q", body.Errors["price"])
	}
	if body.Message != "" {
		t.Errorf("expected no message on validation envelope, got %q", body.Message)
	}
}

func TestHandleError_UnexpectedIsLoggedNotLeaked(t *testing.T) {
	log, buf := newTestLogger()
	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	w := httptest.NewRecorder()

	HandleError(w, req, log, errors.New("pq: relation \"products\" does not exist"))

	if strings.Contains(w.Body.String(), "relation") {
		t.Errorf("internal detail leaked to caller: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "relation") {
		t.Errorf("expected internal detail in server log, got %q", buf.String())
	}
}

func TestJSON_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]int{"id": 1})

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}
