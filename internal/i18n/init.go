package i18n

import (
	_ "embed"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/vi.json
var viMessages []byte

//go:embed locales/en.json
var enMessages []byte

// DefaultLang ist die Sprache, wenn Accept-Language fehlt oder nicht unterstützt wird.
const DefaultLang = "vi"

type Service interface {
	T(lang string, key string, params map[string]any) string
}

type I18nService struct {
	bundle *i18n.Bundle
}

func NewInitI18nService() *I18nService {
	bundle := i18n.NewBundle(language.Vietnamese)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	bundle.MustParseMessageFileBytes(viMessages, "vi.json")
	bundle.MustParseMessageFileBytes(enMessages, "en.json")

	return &I18nService{bundle: bundle}
}

func (g *I18nService) T(lang string, key string, params map[string]any) string {
	localizer := i18n.NewLocalizer(g.bundle, lang, DefaultLang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})

	if err != nil {
		return key
	}

	return msg
}
