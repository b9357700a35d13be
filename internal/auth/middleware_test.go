package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"clanPortal/models"
)

func newGateRouter(t *testing.T, m *SessionManager, gate gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(m, testSecret))
	r.GET("/gated", gate, func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"username": p.Username})
	})
	return r
}

func doGated(t *testing.T, r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginCookie(t *testing.T, m *SessionManager, p Principal) string {
	t.Helper()
	sid := m.Create(p)
	tok, err := EncodeSessionToken(sid, testSecret)
	if err != nil {
		t.Fatalf("encode token: %v", err)
	}
	return tok
}

func TestRequireLogin_NoCookieIs401(t *testing.T) {
	m := NewSessionManager(0)
	r := newGateRouter(t, m, RequireLogin())
	if w := doGated(t, r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireLogin_ForgedCookieIs401(t *testing.T) {
	m := NewSessionManager(0)
	r := newGateRouter(t, m, RequireLogin())
	if w := doGated(t, r, "forged-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireLogin_StaleSessionIs401(t *testing.T) {
	m := NewSessionManager(0)
	r := newGateRouter(t, m, RequireLogin())
	cookie := loginCookie(t, m, Principal{Username: "alice", Role: models.RoleWhitelistMode})

	// Valid token, but the server-side session is gone (e.g. restart).
	sid, err := DecodeSessionToken(cookie, testSecret)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m.Destroy(sid)

	if w := doGated(t, r, cookie); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireLogin_ValidSessionPasses(t *testing.T) {
	m := NewSessionManager(0)
	r := newGateRouter(t, m, RequireLogin())
	cookie := loginCookie(t, m, Principal{Username: "alice", Role: models.RoleWhitelistMode})
	w := doGated(t, r, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireRole_NoSessionIs401(t *testing.T) {
	m := NewSessionManager(0)
	r := newGateRouter(t, m, RequireRole(models.RoleDeveloper, models.RoleFounder))
	if w := doGated(t, r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireRole_WrongRoleIs403(t *testing.T) {
	m := NewSessionManager(0)
	r := newGateRouter(t, m, RequireRole(models.RoleDeveloper, models.RoleFounder))
	cookie := loginCookie(t, m, Principal{Username: "alice", Role: models.RoleWhitelistMode})
	if w := doGated(t, r, cookie); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireRole_AllowedRolePasses(t *testing.T) {
	m := NewSessionManager(0)
	r := newGateRouter(t, m, RequireRole(models.RoleDeveloper, models.RoleFounder))
	for _, role := range []models.Role{models.RoleDeveloper, models.RoleFounder} {
		cookie := loginCookie(t, m, Principal{Username: "dev", Role: role})
		if w := doGated(t, r, cookie); w.Code != http.StatusOK {
			t.Fatalf("role %s: expected 200, got %d: %s", role, w.Code, w.Body)
		}
	}
}
