package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
		wantCode   int
		wantCalled bool
	}{
		{name: "no credentials", wantCode: http.StatusUnauthorized},
		{name: "wrong password", user: "admin", pass: "nope", setAuth: true, wantCode: http.StatusUnauthorized},
		{name: "wrong user", user: "root", pass: "admin", setAuth: true, wantCode: http.StatusUnauthorized},
		{name: "valid", user: "admin", pass: "admin", setAuth: true, wantCode: http.StatusOK, wantCalled: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dummy := &dummyHandler{}
			h := AdminAuth("garden", "admin", "admin")(dummy)

			req := httptest.NewRequest(http.MethodGet, "/plots", nil)
			if tc.setAuth {
				req.SetBasicAuth(tc.user, tc.pass)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Errorf("status = %d; want %d", rec.Code, tc.wantCode)
			}
			if dummy.called != tc.wantCalled {
				t.Errorf("next called = %v; want %v", dummy.called, tc.wantCalled)
			}
			if !tc.wantCalled && rec.Header().Get("WWW-Authenticate") != `Basic realm="garden"` {
				t.Errorf("missing challenge header, got %q", rec.Header().Get("WWW-Authenticate"))
			}
			if tc.wantCalled {
				if got := GetUserFromContext(dummy.ctx); got != "admin" {
					t.Errorf("user in context = %q; want %q", got, "admin")
				}
			}
		})
	}
}

func TestGetUserFromContext_Empty(t *testing.T) {
	if got := GetUserFromContext(context.Background()); got != "" {
		t.Errorf("expected empty user, got %q", got)
	}
}
