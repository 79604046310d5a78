package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    errors.Code
		wantMessage string
	}{
		{"invalid board", errors.New(errors.ErrCodeInvalidBoard, "row 1 has 3 values, want 4"), 400, errors.ErrCodeInvalidBoard, "row 1 has 3 values, want 4"},
		{"run not found", errors.New(errors.ErrCodeRunNotFound, "run x not found"), 404, errors.ErrCodeRunNotFound, "run x not found"},
		{"plain error", fmt.Errorf("disk on fire"), 500, errors.ErrCodeInternal, "internal server error"},
		{"internal hides cause", errors.Wrap(errors.ErrCodeInternal, fmt.Errorf("secret"), "encode"), 500, errors.ErrCodeInternal, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if got := WriteError(rec, tt.err); got != tt.wantStatus {
				t.Errorf("WriteError() = %d, want %d", got, tt.wantStatus)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			var body ErrorBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Error.Code != tt.wantCode || body.Error.Message != tt.wantMessage {
				t.Errorf("body = %+v, want code %s message %q", body, tt.wantCode, tt.wantMessage)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type request struct {
		Board string `json:"board"`
	}

	tests := []struct {
		name    string
		body    string
		max     int64
		want    string
		wantErr bool
	}{
		{"valid", `{"board":"1 2"}`, 0, "1 2", false},
		{"unknown field", `{"bored":"1 2"}`, 0, "", true},
		{"empty", ``, 0, "", true},
		{"malformed", `{"board":`, 0, "", true},
		{"trailing object", `{"board":"a"}{"board":"b"}`, 0, "", true},
		{"too large", `{"board":"` + strings.Repeat("1 ", 100) + `"}`, 32, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var got request
			err := DecodeJSON(httptest.NewRecorder(), req, tt.max, &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if got.Board != tt.want {
				t.Errorf("Board = %q, want %q", got.Board, tt.want)
			}
		})
	}
}

func TestDecodeJSONReportsCauseOnce(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"board":`))
	var got struct {
		Board string `json:"board"`
	}
	err := DecodeJSON(httptest.NewRecorder(), req, 0, &got)
	if err == nil {
		t.Fatal("expected an error for truncated JSON")
	}
	if n := strings.Count(err.Error(), "unexpected EOF"); n != 1 {
		t.Errorf("Error() = %q, mentions the decoder error %d times, want 1", err.Error(), n)
	}
}
