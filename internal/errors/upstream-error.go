package app_errors

import (
	"net/http"
	"strings"
	"unicode/utf8"
)

// maxUpstreamText begrenzt die Länge des Backend-Bodys im "error"-Feld.
const maxUpstreamText = 2048

// MapUpstreamStatus übersetzt eine Nicht-2xx-Antwort des Backends in einen AppError.
// 401 wird immer zum festen "Authentication required"-Envelope, unabhängig vom Body.
// 404 wird nur bei notFound (Shop-/Produktabfragen) zum lokalisierten not-found-Envelope.
// Alles andere behält den originalen Status und trägt den Body als Text.
func MapUpstreamStatus(status int, body []byte, resource string, notFound bool) *AppError {
	switch {
	case status == http.StatusUnauthorized:
		return NewAuthRequired("auth.required")
	case status == http.StatusNotFound && notFound:
		return &AppError{
			Code:       http.StatusNotFound,
			Type:       ErrNotFound,
			MessageKey: "not_found." + resource,
			Detail:     TextNotFound,
		}
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxUpstreamText {
		n := maxUpstreamText
		// nicht mitten in einer UTF-8-Sequenz schneiden
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		text = text[:n]
	}
	if text == "" {
		text = http.StatusText(status)
	}

	return &AppError{
		Code:       status,
		Type:       ErrUpstream,
		MessageKey: "upstream.failed",
		Detail:     text,
	}
}

// NewUpstreamFailure wird bei Transportfehlern oder nicht lesbarem JSON verwendet.
func NewUpstreamFailure(err error) *AppError {
	return &AppError{
		Code:       http.StatusInternalServerError,
		Type:       ErrInternal,
		MessageKey: "upstream.failed",
		Detail:     TextInternal,
		Err:        err,
	}
}
