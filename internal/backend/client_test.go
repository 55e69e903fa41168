package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_URL(t *testing.T) {
	c := NewHTTPClient("https://api.example.test/api", 0)

	q := url.Values{}
	q.Set("size", "20")
	q.Set("page", "0")
	q.Add("sort", "name,asc")
	q.Add("sort", "id,desc")

	assert.Equal(t, "https://api.example.test/api/shops?page=0&size=20&sort=name%2Casc&sort=id%2Cdesc", c.URL("/shops", q))
	assert.Equal(t, "https://api.example.test/api/shops/1", c.URL("/shops/1", nil))
}

func TestHTTPClient_Do_ForwardsHeadersAndBody(t *testing.T) {
	var gotAuth, gotType, gotLang, gotReqID, gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotLang = r.Header.Get("Accept-Language")
		gotReqID = r.Header.Get("X-Request-ID")
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	resp, err := c.Do(context.Background(), Request{
		Method:        http.MethodPost,
		Path:          "/shops",
		Body:          []byte(`{"name":"Bún bò"}`),
		Authorization: "Bearer abc",
		Language:      "vi",
		RequestID:     "FS-1",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, `{"success":true}`, string(resp.Body))
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "vi", gotLang)
	assert.Equal(t, "FS-1", gotReqID)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, `{"name":"Bún bò"}`, gotBody)
}

func TestHTTPClient_Do_NoAuthorizationWhenEmpty(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, 0).Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	require.NoError(t, err)
	assert.False(t, present)
	assert.Equal(t, http.StatusNoContent, resp.Status)
}

func TestHTTPClient_Do_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := NewHTTPClient(base, 0).Do(context.Background(), Request{Method: http.MethodGet, Path: "/shops"})
	assert.Error(t, err)
}

func TestLogoutRoutine(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		client := new(MockClient)
		client.On("Do", ctx, Request{Method: http.MethodPost, Path: LogoutPath, Authorization: "Bearer abc"}).
			Return(&Response{Status: http.StatusOK, Body: []byte(`{"success":true}`)}, nil)

		err := NewLogoutRoutine(client)(ctx, "Bearer abc")

		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("non 2xx is an error", func(t *testing.T) {
		client := new(MockClient)
		client.On("Do", ctx, mock.Anything).Return(&Response{Status: http.StatusUnauthorized}, nil)

		err := NewLogoutRoutine(client)(ctx, "")

		assert.EqualError(t, err, "backend logout: status 401")
	})

	t.Run("transport error", func(t *testing.T) {
		client := new(MockClient)
		client.On("Do", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		assert.Error(t, NewLogoutRoutine(client)(ctx, "Bearer abc"))
	})
}
