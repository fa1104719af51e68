package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"go-enterprise-ops/internal/handler"
	"go-enterprise-ops/internal/model"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/service"
	"go-enterprise-ops/pkg/jwt"
)

type whoami struct {
	EmployeeID string     `json:"employee_id"`
	Role       model.Role `json:"role"`
	Tenant     string     `json:"tenant"`
}

func newAuthTestApp(blacklist *service.TokenBlacklist) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler(zap.NewNop().Sugar()),
	})
	app.Get("/me", RequireAuth(blacklist), func(c *fiber.Ctx) error {
		rc := reqctx.FromFiber(c)
		return c.JSON(whoami{EmployeeID: rc.EmployeeID, Role: rc.Role, Tenant: rc.Tenant})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authorization, tenant string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	if tenant != "" {
		req.Header.Set("X-Tenant-Id", tenant)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestRequireAuthBindsIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	blacklist := service.NewTokenBlacklist(time.Minute)
	defer blacklist.Stop()
	app := newAuthTestApp(blacklist)

	token, _, err := jwt.GenerateToken("1111-2222-3333", model.RoleManager, "active")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	resp := doRequest(t, app, "Bearer "+token, "acme")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got whoami
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.EmployeeID != "1111-2222-3333" || got.Role != model.RoleManager || got.Tenant != "acme" {
		t.Fatalf("identity = %+v", got)
	}
}

func TestRequireAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	blacklist := service.NewTokenBlacklist(time.Minute)
	defer blacklist.Stop()
	app := newAuthTestApp(blacklist)

	for _, header := range []string{"", "Bearer", "Token abc", "Bearer a b"} {
		resp := doRequest(t, app, header, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, resp.StatusCode)
		}
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	blacklist := service.NewTokenBlacklist(time.Minute)
	defer blacklist.Stop()
	app := newAuthTestApp(blacklist)

	resp := doRequest(t, app, "Bearer not.a.token", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	token, _, _ := jwt.GenerateToken("1111-2222-3333", model.RoleManager, "active")
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	resp = doRequest(t, app, "Bearer "+token, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong signature: status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuthRejectsRevokedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	blacklist := service.NewTokenBlacklist(time.Minute)
	defer blacklist.Stop()
	app := newAuthTestApp(blacklist)

	token, _, err := jwt.GenerateToken("1111-2222-3333", model.RoleManager, "active")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if resp := doRequest(t, app, "Bearer "+token, ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("fresh token: status = %d", resp.StatusCode)
	}

	blacklist.Revoke(token, time.Minute)

	if resp := doRequest(t, app, "Bearer "+token, ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatal("revoked token must be rejected")
	}
}

func TestRequestsDoNotShareIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	blacklist := service.NewTokenBlacklist(time.Minute)
	defer blacklist.Stop()
	app := newAuthTestApp(blacklist)

	tokenA, _, _ := jwt.GenerateToken("aaaa-1111-1111", model.RoleAdmin, "active")
	tokenB, _, _ := jwt.GenerateToken("bbbb-2222-2222", model.RoleDealer, "active")

	for i := 0; i < 10; i++ {
		respA := doRequest(t, app, "Bearer "+tokenA, "tenant-a")
		respB := doRequest(t, app, "Bearer "+tokenB, "tenant-b")

		var a, b whoami
		json.NewDecoder(respA.Body).Decode(&a)
		json.NewDecoder(respB.Body).Decode(&b)
		if a.EmployeeID != "aaaa-1111-1111" || a.Tenant != "tenant-a" {
			t.Fatalf("request A saw %+v", a)
		}
		if b.EmployeeID != "bbbb-2222-2222" || b.Tenant != "tenant-b" {
			t.Fatalf("request B saw %+v", b)
		}
	}
}
