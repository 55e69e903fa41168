package routers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Warzoness/foodshare-manager/internal/backend"
	"github.com/Warzoness/foodshare-manager/internal/config"
	"github.com/Warzoness/foodshare-manager/internal/entity"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	"github.com/Warzoness/foodshare-manager/internal/i18n"
	"github.com/Warzoness/foodshare-manager/internal/middleware"
	use_cases "github.com/Warzoness/foodshare-manager/internal/use-cases"
	auth_case "github.com/Warzoness/foodshare-manager/internal/use-cases/auth-case"
	user_case "github.com/Warzoness/foodshare-manager/internal/use-cases/user-case"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type backendCall struct {
	Method string
	Path   string
	Query  url.Values
	Auth   string
	Lang   string
	Body   string
}

// fakeBackend zeichnet jeden Aufruf auf und antwortet über respond.
type fakeBackend struct {
	*httptest.Server
	mu    sync.Mutex
	calls []backendCall
}

func newFakeBackend(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.calls = append(fb.calls, backendCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Auth:   r.Header.Get("Authorization"),
			Lang:   r.Header.Get("Accept-Language"),
			Body:   string(b),
		})
		fb.mu.Unlock()
		respond(w, r)
	}))
	t.Cleanup(fb.Close)
	return fb
}

// replyWith antwortet immer mit status und body.
func replyWith(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (fb *fakeBackend) Calls() []backendCall {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]backendCall(nil), fb.calls...)
}

func (fb *fakeBackend) LastCall(t *testing.T) backendCall {
	t.Helper()
	calls := fb.Calls()
	require.NotEmpty(t, calls, "backend wurde nicht aufgerufen")
	return calls[len(calls)-1]
}

func testConfig() *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.APP.Name = "foodshare-manager-test"
	cfg.SESSION.CookieName = "bo_session"
	cfg.SESSION.TTL = time.Hour
	cfg.LIMITER.LoginMax = 100
	cfg.LIMITER.LoginWindow = time.Minute
	return cfg
}

type testApp struct {
	app      *fiber.App
	sessions *use_cases.MockCache[entity.AuthenticatedUser]
}

func newTestApp(t *testing.T, backendURL string, cfg *config.AppConfig) *testApp {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}

	i18nSvc := i18n.NewInitI18nService()
	client := backend.NewHTTPClient(backendURL, 0)
	sessions := &use_cases.MockCache[entity.AuthenticatedUser]{}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	SetupRoutes(app, Deps{
		Config: cfg,
		Proxy:  proxy_handlers.NewProxy(client, i18nSvc),
		Shell:  auth_case.NewShell(sessions, backend.NewLogoutRoutine(client), cfg.SESSION.TTL),
		Users:  user_case.NewUserService(),
		I18n:   i18nSvc,
	})

	return &testApp{app: app, sessions: sessions}
}

func (ta *testApp) do(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Message   string          `json:"message"`
	Code      string          `json:"code"`
	RequestID string          `json:"request_id"`
	Details   []struct {
		Field   string `json:"field"`
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"details"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return env
}
