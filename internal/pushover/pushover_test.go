package pushover

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_SendPostsForm(t *testing.T) {
	var gotMethod, gotContentType string
	var gotForm map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm failed: %v", err)
		}
		gotForm = r.PostForm
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":1}`))
	}))
	defer srv.Close()

	client := NewWithEndpoint(srv.URL)
	err := client.Send("app-token", "user-key", "00:15:00 has elapsed")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("content type = %q, want form encoding", gotContentType)
	}

	want := map[string]string{
		"token":   "app-token",
		"user":    "user-key",
		"message": "00:15:00 has elapsed",
	}
	for field, value := range want {
		if got := gotForm[field]; len(got) != 1 || got[0] != value {
			t.Errorf("form[%q] = %v, want [%q]", field, got, value)
		}
	}
}

func TestClient_SendStatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{"ok", http.StatusOK, `{"status":1}`, false},
		{"accepted", http.StatusAccepted, "", false},
		{"bad request", http.StatusBadRequest, `{"errors":["application token is invalid"]}`, true},
		{"server error", http.StatusInternalServerError, "boom", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewWithEndpoint(srv.URL).Send("t", "u", "m")
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Send returned error: %v", err)
				}
				return
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Send error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Body != tt.body {
				t.Errorf("Body = %q, want %q", apiErr.Body, tt.body)
			}
		})
	}
}

func TestClient_SendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := NewWithEndpoint(srv.URL).Send("t", "u", "m")
	if err == nil {
		t.Fatal("Send to a closed server should fail")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not be an *APIError, got %v", err)
	}
	if !strings.Contains(err.Error(), srv.URL) {
		t.Errorf("error %v should name the endpoint", err)
	}
}

func TestAPIError_Error(t *testing.T) {
	withBody := &APIError{StatusCode: 400, Body: `{"errors":["user key is invalid"]}`}
	if got := withBody.Error(); !strings.Contains(got, "400") || !strings.Contains(got, "user key is invalid") {
		t.Errorf("Error() = %q, want status and body present", got)
	}

	bare := &APIError{StatusCode: 503}
	if got := bare.Error(); !strings.Contains(got, "503") {
		t.Errorf("Error() = %q, want status present", got)
	}
}
