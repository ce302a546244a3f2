package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func authRequest(t *testing.T, keys []string, path, header string) *httptest.ResponseRecorder {
	t.Helper()

	handler := BearerAuthMiddleware(keys)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", path, http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestBearerAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		path     string
		header   string
		wantCode int
	}{
		{"no keys disables auth", nil, "/api/v1/search", "", http.StatusOK},
		{"blank keys disable auth", []string{"", ""}, "/api/v1/search", "", http.StatusOK},
		{"missing header", []string{"secret"}, "/api/v1/search", "", http.StatusUnauthorized},
		{"basic scheme rejected", []string{"secret"}, "/api/v1/search", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"wrong key", []string{"secret"}, "/api/v1/search", "Bearer wrong-key", http.StatusUnauthorized},
		{"valid key", []string{"secret"}, "/api/v1/search", "Bearer secret", http.StatusOK},
		{"second key also valid", []string{"secret", "other"}, "/api/v1/search", "Bearer other", http.StatusOK},
		{"health exempt", []string{"secret"}, "/health", "", http.StatusOK},
		{"metrics exempt", []string{"secret"}, "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := authRequest(t, tt.keys, tt.path, tt.header)
			if rr.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}

func TestBearerAuthMiddleware_ErrorBody(t *testing.T) {
	rr := authRequest(t, []string{"secret"}, "/api/v1/search", "")

	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != codeBadRequest {
		t.Errorf("error code: got %s, want %s", resp.Code, codeBadRequest)
	}
	if resp.Message == "" {
		t.Error("expected a non-empty error message")
	}
}
