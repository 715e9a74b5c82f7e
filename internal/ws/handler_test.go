package ws

import (
	"net/http/httptest"
	"testing"
)

func TestOriginAllowed(t *testing.T) {
	allowed := splitOrigins("https://app.liftout.io, https://staging.liftout.io/")

	cases := []struct {
		name   string
		origin string
		want   bool
	}{
		{"no origin header", "", true},
		{"same host", "https://api.liftout.io", true},
		{"allowlisted", "https://app.liftout.io", true},
		{"allowlist trailing slash normalized", "https://staging.liftout.io", true},
		{"origin case-insensitive", "HTTPS://APP.LIFTOUT.IO", true},
		{"unknown origin", "https://evil.example", false},
		{"subdomain of allowed host", "https://app.liftout.io.evil.example", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "http://api.liftout.io/ws", nil)
		req.Host = "api.liftout.io"
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		if got := originAllowed(req, allowed); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestSplitOriginsEmpty(t *testing.T) {
	if got := splitOrigins(" , "); len(got) != 0 {
		t.Fatalf("expected no origins, got %v", got)
	}
}
