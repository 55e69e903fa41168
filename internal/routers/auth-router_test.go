package routers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Warzoness/foodshare-manager/internal/entity"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/Warzoness/foodshare-manager/internal/utils"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invalidTokenMessage = "Phiên đăng nhập không hợp lệ hoặc đã hết hạn. Vui lòng đăng nhập lại."

const loginBody = `{"success":true,"data":{"accessToken":"at-1","refreshToken":"rt-1","user":{"id":3,"name":"Nguyễn Văn Bán","email":"ban.nguyen@banhmi.vn","role":"SELLER"}}}`

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "bo_session" {
			return c
		}
	}
	return nil
}

func TestMeRequiresBearer(t *testing.T) {
	fb := newFakeBackend(t, replyWith(http.StatusOK, `{"success":true}`))
	ta := newTestApp(t, fb.URL, nil)

	for _, header := range []string{"", "Token abc", "Bearer ", "Bearer invalid_token"} {
		req := newRequest(http.MethodGet, "/api/back-office/auth/me", "")
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, body := ta.do(t, req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
		env := decodeEnvelope(t, body)
		assert.Equal(t, invalidTokenMessage, env.Message)
		assert.Equal(t, "Authentication required", env.Error)
	}
	assert.Empty(t, fb.Calls())

	req := newRequest(http.MethodGet, "/api/back-office/auth/me", "")
	req.Header.Set("Authorization", "Bearer at-1")
	resp, body := ta.do(t, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"success":true}`, string(body))
	assert.Equal(t, "/back-office/auth/me", fb.LastCall(t).Path)
}

func TestBearerMessageIgnoresLanguage(t *testing.T) {
	ta := newTestApp(t, "http://127.0.0.1:1", nil)

	req := newRequest(http.MethodGet, "/api/back-office/auth/me", "")
	req.Header.Set("Accept-Language", "en")
	resp, body := ta.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, invalidTokenMessage, decodeEnvelope(t, body).Message)

	req = newRequest(http.MethodPut, "/api/back-office/auth/change-password", `{}`)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Authorization", "Bearer invalid_token")
	resp, body = ta.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, invalidTokenMessage, decodeEnvelope(t, body).Message)
}

func TestChangePasswordIsStub(t *testing.T) {
	ta := newTestApp(t, "http://127.0.0.1:1", nil)

	resp, body := ta.do(t, newRequest(http.MethodPut, "/api/back-office/auth/change-password", `{}`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, invalidTokenMessage, decodeEnvelope(t, body).Message)

	req := newRequest(http.MethodPut, "/api/back-office/auth/change-password", `{"currentPassword":"old-pass","newPassword":"new-pass-1","confirmPassword":"other"}`)
	req.Header.Set("Authorization", "Bearer at-1")
	resp, body = ta.do(t, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, body).Code)

	req = newRequest(http.MethodPut, "/api/back-office/auth/change-password", `{"currentPassword":"old-pass","newPassword":"new-pass-1","confirmPassword":"new-pass-1"}`)
	req.Header.Set("Authorization", "Bearer at-1")
	resp, body = ta.do(t, req)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	env := decodeEnvelope(t, body)
	assert.Equal(t, app_errors.DatabaseNotConnected, env.Message)
	assert.Equal(t, "NOT_IMPLEMENTED", env.Code)
}

func TestLoginCommitsSession(t *testing.T) {
	fb := newFakeBackend(t, replyWith(http.StatusOK, loginBody))
	ta := newTestApp(t, fb.URL, nil)

	var stored *entity.AuthenticatedUser
	var storedTTL time.Duration
	ta.sessions.SetFn = func(ctx context.Context, key string, val *entity.AuthenticatedUser, ttl time.Duration) *app_errors.AppError {
		stored = val
		storedTTL = ttl
		return nil
	}

	resp, body := ta.do(t, newRequest(http.MethodPost, "/api/back-office/auth/login", `{"email":"ban.nguyen@banhmi.vn","password":"secret1"}`))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, loginBody, string(body))
	assert.Equal(t, "/back-office/auth/login", fb.LastCall(t).Path)
	assert.Equal(t, http.MethodPost, fb.LastCall(t).Method)

	require.NotNil(t, stored)
	assert.Equal(t, entity.SELLER, stored.Role)
	assert.Equal(t, time.Hour, storedTTL)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, utils.IsValidSessionID(cookie.Value))
	assert.True(t, cookie.HttpOnly)
}

func TestLoginRejectsInvalidBody(t *testing.T) {
	fb := newFakeBackend(t, replyWith(http.StatusOK, loginBody))
	ta := newTestApp(t, fb.URL, nil)

	resp, body := ta.do(t, newRequest(http.MethodPost, "/api/back-office/auth/login", `{"email":"not-an-email"}`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, body).Code)
	assert.Empty(t, fb.Calls())
	assert.Equal(t, 0, ta.sessions.SetCalled)
}

func TestLoginWrongCredentialsIsRelayed(t *testing.T) {
	fb := newFakeBackend(t, replyWith(http.StatusBadRequest, `{"success":false,"message":"Sai mật khẩu"}`))
	ta := newTestApp(t, fb.URL, nil)

	resp, body := ta.do(t, newRequest(http.MethodPost, "/api/back-office/auth/login", `{"email":"a@b.vn","password":"wrong-1"}`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeEnvelope(t, body).Error, "Sai mật khẩu")
	assert.Nil(t, sessionCookie(resp))
	assert.Equal(t, 0, ta.sessions.SetCalled)
}

// Test: Kunden-Konten bekommen keine Back-Office-Sitzung
func TestLoginRejectsUnknownRole(t *testing.T) {
	fb := newFakeBackend(t, replyWith(http.StatusOK, strings.Replace(loginBody, "SELLER", "CUSTOMER", 1)))
	ta := newTestApp(t, fb.URL, nil)

	resp, body := ta.do(t, newRequest(http.MethodPost, "/api/back-office/auth/login", `{"email":"a@b.vn","password":"secret1"}`))

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, body).Code)
	assert.Nil(t, sessionCookie(resp))
}

func TestLoginRateLimit(t *testing.T) {
	fb := newFakeBackend(t, replyWith(http.StatusOK, loginBody))
	cfg := testConfig()
	cfg.LIMITER.LoginMax = 1
	ta := newTestApp(t, fb.URL, cfg)

	payload := `{"email":"ban.nguyen@banhmi.vn","password":"secret1"}`
	resp, _ := ta.do(t, newRequest(http.MethodPost, "/api/back-office/auth/login", payload))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := ta.do(t, newRequest(http.MethodPost, "/api/back-office/auth/login", payload))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeEnvelope(t, body).Code)
	assert.Len(t, fb.Calls(), 1)
}

func TestSessionState(t *testing.T) {
	ta := newTestApp(t, "http://127.0.0.1:1", nil)
	sid := utils.NewSessionID()
	ta.sessions.GetFn = func(ctx context.Context, key string) (*entity.AuthenticatedUser, *app_errors.AppError) {
		if key != sid {
			return nil, nil
		}
		return &entity.AuthenticatedUser{ID: 1, Name: "Admin", Email: "admin@foodshare.vn", Role: entity.ADMIN}, nil
	}

	req := newRequest(http.MethodGet, "/api/back-office/auth/session", "")
	req.AddCookie(&http.Cookie{Name: "bo_session", Value: sid})
	resp, body := ta.do(t, req)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var state struct {
		User    *entity.AuthenticatedUser `json:"user"`
		Loading bool                      `json:"loading"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, body).Data, &state))
	require.NotNil(t, state.User)
	assert.Equal(t, entity.ADMIN, state.User.Role)
	assert.False(t, state.Loading)

	// Ohne Cookie: kein Benutzer
	resp, body = ta.do(t, newRequest(http.MethodGet, "/api/back-office/auth/session", ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, body).Data, &state))
	assert.Nil(t, state.User)
}

func TestLogoutCallsBackendThenClears(t *testing.T) {
	fb := newFakeBackend(t, replyWith(http.StatusOK, `{"success":true}`))
	ta := newTestApp(t, fb.URL, nil)
	sid := utils.NewSessionID()
	ta.sessions.GetFn = func(ctx context.Context, key string) (*entity.AuthenticatedUser, *app_errors.AppError) {
		return &entity.AuthenticatedUser{ID: 3, Role: entity.SELLER}, nil
	}
	var deleted string
	ta.sessions.DelFn = func(ctx context.Context, key string) error {
		deleted = key
		return nil
	}

	req := newRequest(http.MethodPost, "/api/back-office/auth/logout", "")
	req.Header.Set("Authorization", "Bearer at-1")
	req.AddCookie(&http.Cookie{Name: "bo_session", Value: sid})
	resp, body := ta.do(t, req)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeEnvelope(t, body).Success)
	assert.Equal(t, sid, deleted)

	call := fb.LastCall(t)
	assert.Equal(t, "/back-office/auth/logout", call.Path)
	assert.Equal(t, "Bearer at-1", call.Auth)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

// Test: auch wenn das Backend-Logout scheitert, ist die Sitzung danach leer
func TestLogoutClearsEvenWhenBackendFails(t *testing.T) {
	fb := newFakeBackend(t, replyWith(http.StatusUnauthorized, ""))
	ta := newTestApp(t, fb.URL, nil)
	ta.sessions.GetFn = func(ctx context.Context, key string) (*entity.AuthenticatedUser, *app_errors.AppError) {
		return &entity.AuthenticatedUser{ID: 3, Role: entity.SELLER}, nil
	}

	req := newRequest(http.MethodPost, "/api/back-office/auth/logout", "")
	req.AddCookie(&http.Cookie{Name: "bo_session", Value: utils.NewSessionID()})
	resp, _ := ta.do(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, ta.sessions.DelCalled)
}
