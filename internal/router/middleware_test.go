package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/noren-next/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func sessionProbeEngine(cfg config.SessionConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(cfg))
	r.GET("/probe", func(c *gin.Context) {
		value, _ := c.Get(sessionIDKey)
		sessionID, _ := value.(string)
		c.String(http.StatusOK, sessionID)
	})
	return r
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("expected cookie %s in response", name)
	return nil
}

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	r := sessionProbeEngine(config.SessionConfig{CookieName: "noren_session", IdleTTLMinutes: 120})

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest("GET", "/probe", nil))

	cookie := sessionCookie(t, recorder, "noren_session")
	if err := uuid.Validate(cookie.Value); err != nil {
		t.Fatalf("expected uuid session cookie, got %q: %v", cookie.Value, err)
	}
	if cookie.MaxAge != 120*60 {
		t.Fatalf("expected cookie max age aligned with idle ttl, got %d", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be http only")
	}
	if recorder.Body.String() != cookie.Value {
		t.Fatalf("context session id %q differs from cookie %q", recorder.Body.String(), cookie.Value)
	}
}

func TestSessionMiddlewareKeepsValidCookie(t *testing.T) {
	r := sessionProbeEngine(config.SessionConfig{CookieName: "noren_session", IdleTTLMinutes: 120})
	existing := uuid.NewString()

	request := httptest.NewRequest("GET", "/probe", nil)
	request.AddCookie(&http.Cookie{Name: "noren_session", Value: existing})
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, request)

	if recorder.Body.String() != existing {
		t.Fatalf("expected session id kept, got %q", recorder.Body.String())
	}
}

func TestSessionMiddlewareReplacesInvalidCookie(t *testing.T) {
	r := sessionProbeEngine(config.SessionConfig{CookieName: "noren_session", IdleTTLMinutes: 120})

	request := httptest.NewRequest("GET", "/probe", nil)
	request.AddCookie(&http.Cookie{Name: "noren_session", Value: "not-a-uuid"})
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, request)

	issued := recorder.Body.String()
	if issued == "not-a-uuid" {
		t.Fatalf("expected forged session id replaced")
	}
	if err := uuid.Validate(issued); err != nil {
		t.Fatalf("expected fresh uuid, got %q: %v", issued, err)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest("GET", "/probe", nil))
	generated := recorder.Header().Get(requestIDHeader)
	if generated == "" || recorder.Body.String() != generated {
		t.Fatalf("expected generated request id in header and context")
	}

	request := httptest.NewRequest("GET", "/probe", nil)
	request.Header.Set(requestIDHeader, "req-123")
	recorder = httptest.NewRecorder()
	r.ServeHTTP(recorder, request)
	if recorder.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("expected incoming request id echoed, got %q", recorder.Header().Get(requestIDHeader))
	}
}

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowed          []string
		allowCredentials bool
		want             string
	}{
		{"wildcard", "https://a.example", []string{"*"}, false, "*"},
		{"wildcard_with_credentials", "https://a.example", []string{"*"}, true, "https://a.example"},
		{"exact_match", "https://a.example", []string{"https://a.example"}, false, "https://a.example"},
		{"case_insensitive", "https://A.example", []string{"https://a.example"}, false, "https://A.example"},
		{"no_match", "https://b.example", []string{"https://a.example"}, false, ""},
		{"empty_origin", "", []string{"https://a.example"}, false, ""},
	}
	for _, tc := range cases {
		if got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.allowCredentials); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestRateLimitMiddlewarePassThroughWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rule := RateLimitRule{Prefix: "nr:rate:cart", WindowSeconds: 60, MaxRequests: 1}
	r.Use(RateLimitMiddleware(nil, rule, KeyBySession))
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest("GET", "/probe", nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected pass-through without redis client, got %d", recorder.Code)
		}
	}
}

func TestKeyBySessionFallsBackToIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/probe", nil)

	if got := KeyBySession(c); got != c.ClientIP() {
		t.Fatalf("expected ip fallback, got %q", got)
	}

	c.Set(sessionIDKey, "session-1")
	if got := KeyBySession(c); got != "session-1" {
		t.Fatalf("expected session key, got %q", got)
	}
}
