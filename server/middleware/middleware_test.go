package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/authd/authctx"
	"github.com/skillsenselab/authd/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokenService(t *testing.T) *token.Service {
	t.Helper()
	svc, err := token.NewService(&token.Config{Secret: "middleware-test-secret"})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

// claimsEngine routes GET /whoami through Claims and reports the attached
// identity, if any.
func claimsEngine(svc *token.Service) *gin.Engine {
	e := gin.New()
	e.Use(Claims(svc.Verify))
	e.GET("/whoami", func(c *gin.Context) {
		if claims, ok := authctx.Get(c.Request.Context()); ok {
			c.String(http.StatusOK, claims.Name())
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return e
}

func get(e *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestClaims_AttachesVerifiedClaims(t *testing.T) {
	svc := newTokenService(t)
	tok, err := svc.Issue("bob", []string{"auth"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w := get(claimsEngine(svc), "/whoami", map[string]string{"Authorization": "Bearer " + tok})
	if w.Body.String() != "bob" {
		t.Errorf("expected identity bob, got %q", w.Body.String())
	}
}

func TestClaims_SchemeIsCaseInsensitive(t *testing.T) {
	svc := newTokenService(t)
	tok, err := svc.Issue("bob", nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	for _, scheme := range []string{"bearer", "BEARER", "BeArEr"} {
		w := get(claimsEngine(svc), "/whoami", map[string]string{"Authorization": scheme + " " + tok})
		if w.Body.String() != "bob" {
			t.Errorf("scheme %q: expected identity bob, got %q", scheme, w.Body.String())
		}
	}
}

func TestClaims_NeverRejects(t *testing.T) {
	svc := newTokenService(t)
	engine := claimsEngine(svc)

	headers := []map[string]string{
		nil,
		{"Authorization": "Bearer garbage"},
		{"Authorization": "Basic dXNlcjpwdw=="},
		{"Authorization": "Bearer"},
	}
	for _, h := range headers {
		w := get(engine, "/whoami", h)
		if w.Code != http.StatusOK {
			t.Errorf("headers %v: claims middleware must not reject, got %d", h, w.Code)
		}
		if w.Body.String() != "anonymous" {
			t.Errorf("headers %v: expected anonymous, got %q", h, w.Body.String())
		}
	}
}

func TestRequireFunction_RejectsWithEmptyBody(t *testing.T) {
	svc := newTokenService(t)
	e := gin.New()
	e.Use(Claims(svc.Verify))
	e.GET("/admin", RequireFunction("auth"), func(c *gin.Context) {
		c.String(http.StatusOK, "in")
	})

	// No token at all.
	w := get(e, "/admin", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 without token, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("rejection body must be empty, got %q", w.Body.String())
	}

	// Valid token lacking the function.
	tok, err := svc.Issue("bob", []string{"api"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w = get(e, "/admin", map[string]string{"Authorization": "Bearer " + tok})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 without the function, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("rejection body must be empty, got %q", w.Body.String())
	}
}

func TestRequireFunction_PassesWithFunction(t *testing.T) {
	svc := newTokenService(t)
	e := gin.New()
	e.Use(Claims(svc.Verify))
	e.GET("/admin", RequireFunction("auth"), func(c *gin.Context) {
		c.String(http.StatusOK, "in")
	})

	tok, err := svc.Issue("bob", []string{"api", "auth"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := get(e, "/admin", map[string]string{"Authorization": "Bearer " + tok})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequestID_GeneratesAndPreserves(t *testing.T) {
	e := gin.New()
	e.Use(RequestID())
	e.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(e, "/", nil)
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected a generated request id")
	}

	w = get(e, "/", map[string]string{"X-Request-Id": "caller-id"})
	if got := w.Header().Get("X-Request-Id"); got != "caller-id" {
		t.Errorf("expected caller id preserved, got %q", got)
	}
}

func TestRecovery_TurnsPanicInto500(t *testing.T) {
	e := gin.New()
	e.Use(Recovery())
	e.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := get(e, "/boom", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	e := gin.New()
	e.Use(CORS(CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
	}))
	e.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Errorf("expected origin echoed, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
