package app_errors

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMapUpstreamStatus_UnauthorizedIgnoresBody(t *testing.T) {
	for _, body := range []string{"", `{"message":"token expired"}`, "<html>nope</html>"} {
		appErr := MapUpstreamStatus(http.StatusUnauthorized, []byte(body), "shop", true)

		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Equal(t, ErrUnauthorized, appErr.Type)
		assert.Equal(t, TextAuthRequired, appErr.Detail)
		assert.Equal(t, "auth.required", appErr.MessageKey)
	}
}

func TestMapUpstreamStatus_NotFoundOnlyWhenEnabled(t *testing.T) {
	appErr := MapUpstreamStatus(http.StatusNotFound, []byte("missing"), "product", true)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, ErrNotFound, appErr.Type)
	assert.Equal(t, "not_found.product", appErr.MessageKey)

	// Ohne notFound bleibt es ein gewöhnlicher Upstream-Fehler mit Body-Text
	appErr = MapUpstreamStatus(http.StatusNotFound, []byte("missing"), "order", false)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, ErrUpstream, appErr.Type)
	assert.Equal(t, "missing", appErr.Detail)
}

func TestMapUpstreamStatus_KeepsStatusAndBody(t *testing.T) {
	appErr := MapUpstreamStatus(http.StatusConflict, []byte("  shop already approved \n"), "shop", true)

	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.Equal(t, ErrUpstream, appErr.Type)
	assert.Equal(t, "shop already approved", appErr.Detail)
}

func TestMapUpstreamStatus_EmptyBodyFallsBackToStatusText(t *testing.T) {
	appErr := MapUpstreamStatus(http.StatusBadGateway, nil, "order", false)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), appErr.Detail)
}

func TestMapUpstreamStatus_TruncatesLongBody(t *testing.T) {
	appErr := MapUpstreamStatus(http.StatusInternalServerError, []byte(strings.Repeat("x", 5000)), "order", false)
	assert.Len(t, appErr.Detail, maxUpstreamText)
}

func TestMapUpstreamStatus_TruncatesOnRuneBoundary(t *testing.T) {
	// "ệ" ist 3 Bytes lang, ein Byte Versatz legt die Grenze mitten in die Sequenz
	body := "x" + strings.Repeat("ệ", maxUpstreamText)
	appErr := MapUpstreamStatus(http.StatusBadRequest, []byte(body), "order", false)

	assert.True(t, utf8.ValidString(appErr.Detail))
	assert.LessOrEqual(t, len(appErr.Detail), maxUpstreamText)
	assert.Equal(t, maxUpstreamText-1, len(appErr.Detail))
}

func TestNewUpstreamFailure_Wraps(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	appErr := NewUpstreamFailure(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.ErrorIs(t, appErr, cause)
}

func TestNewNotImplemented_DefaultMessage(t *testing.T) {
	appErr := NewNotImplemented("")
	assert.Equal(t, http.StatusNotImplemented, appErr.Code)
	assert.Equal(t, DatabaseNotConnected, appErr.Literal)
	assert.Equal(t, DatabaseNotConnected, appErr.Error())
}
