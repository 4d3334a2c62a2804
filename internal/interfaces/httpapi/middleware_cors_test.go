package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	const league = "https://liga-amateur.example.com"

	tests := []struct {
		name       string
		origins    []string
		method     string
		origin     string
		preflight  string
		wantStatus int
		wantAllow  string
	}{
		{name: "configured origin", origins: []string{league}, method: http.MethodGet, origin: league, wantStatus: http.StatusTeapot, wantAllow: league},
		{name: "unconfigured origin", origins: []string{"https://allowed.example.com"}, method: http.MethodGet, origin: league, wantStatus: http.StatusTeapot, wantAllow: ""},
		{name: "wildcard preflight", origins: []string{"*"}, method: http.MethodOptions, origin: league, preflight: http.MethodPut, wantStatus: http.StatusNoContent, wantAllow: "*"},
		{name: "blank origins pass through", origins: []string{" ", ""}, method: http.MethodGet, origin: league, wantStatus: http.StatusTeapot, wantAllow: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})
			handler := CORS(tt.origins, next)

			req := httptest.NewRequest(tt.method, "/v1/admin/match-reports", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight != "" {
				req.Header.Set("Access-Control-Request-Method", tt.preflight)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Fatalf("Access-Control-Allow-Origin=%q want=%q", got, tt.wantAllow)
			}
		})
	}
}

func TestCORS_PreflightAllowsAdminTokenHeader(t *testing.T) {
	handler := CORS([]string{"*"}, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/admin/match-reports", nil)
	req.Header.Set("Origin", "https://liga-amateur.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", headerAdminToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatalf("expected admin token header to be allowed")
	}
}
