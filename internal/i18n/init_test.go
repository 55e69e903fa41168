package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_DefaultsToVietnamese(t *testing.T) {
	svc := NewInitI18nService()

	assert.Equal(t, "Không tìm thấy cửa hàng.", svc.T("", "not_found.shop", nil))
	assert.Equal(t, "Không tìm thấy cửa hàng.", svc.T("fr", "not_found.shop", nil))
}

func TestT_English(t *testing.T) {
	svc := NewInitI18nService()

	assert.Equal(t, "Authentication required", svc.T("en", "auth.required", nil))
}

func TestT_TemplateParams(t *testing.T) {
	svc := NewInitI18nService()

	assert.Equal(t, "The value must be at least 8.", svc.T("en", "validation.min", map[string]any{"min": "8"}))
}

func TestT_UnknownKeyFallsBackToKey(t *testing.T) {
	svc := NewInitI18nService()

	assert.Equal(t, "does.not.exist", svc.T("vi", "does.not.exist", nil))
}
