package middleware

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/domain/model"
	testhelpers "github.com/notemart/notemart/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authEngine(parser TokenParser) *gin.Engine {
	engine := gin.New()
	engine.GET("/protected", AuthRequired(parser), func(c *gin.Context) {
		id, _ := c.Get(UserIDContextKey)
		role, _ := c.Get(RoleContextKey)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return engine
}

func TestAuthRequiredMissingToken(t *testing.T) {
	engine := authEngine(testhelpers.TokenParserStub{ID: 1})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	engine := authEngine(testhelpers.TokenParserStub{ID: 7, Role: model.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":7`) {
		t.Fatalf("expected user id in context, got %s", rec.Body.String())
	}
}

func TestAuthRequiredCookieFallback(t *testing.T) {
	engine := authEngine(testhelpers.TokenParserStub{ID: 3})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "token"})
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	engine := authEngine(testhelpers.TokenParserStub{Err: http.ErrNoCookie})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOptionalAuthAnonymousPasses(t *testing.T) {
	engine := gin.New()
	engine.GET("/open", OptionalAuth(testhelpers.TokenParserStub{ID: 5}), func(c *gin.Context) {
		if _, ok := c.Get(UserIDContextKey); ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected anonymous request to pass without identity, got %d", rec.Code)
	}
}

func TestAdminRequired(t *testing.T) {
	cases := []struct {
		name string
		role model.Role
		want int
	}{
		{"admin allowed", model.RoleAdmin, http.StatusOK},
		{"user forbidden", model.RoleUser, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/admin",
				AuthRequired(testhelpers.TokenParserStub{ID: 1, Role: tc.role}),
				AdminRequired(),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestDecompressRequest(t *testing.T) {
	engine := gin.New()
	engine.POST("/echo", DecompressRequest(), func(c *gin.Context) {
		body, _ := c.GetRawData()
		c.String(http.StatusOK, string(body))
	})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("payload"))
	_ = zw.Close()

	req := httptest.NewRequest(http.MethodPost, "/echo", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "payload" {
		t.Fatalf("expected decompressed body, got %q", rec.Body.String())
	}
}

func TestDecompressRequestRejectsCorruptBody(t *testing.T) {
	engine := gin.New()
	engine.POST("/echo", DecompressRequest(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
