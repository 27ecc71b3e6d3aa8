package sap

import (
	"embed"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// NewLocalizationBundle returns an initialized internationalization bundle
// with the embedded locale files, the way the teacher's GetI18n does for
// its validation error messages. Callers pass a localizer from the returned
// bundle to CoercionError.Localize when they want diagnostics in a language
// other than English.
func NewLocalizationBundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)

	err := bundle.LoadFS(localesFS, "locales/*.json")

	return bundle, err
}

// Localize returns a localized rendering of a CoercionError using the
// provided localizer, falling back to the raw Message template when
// localizer is nil or the code has no translation.
func (e *CoercionError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Error()
	}
	return localizer.Get(e.Code, i18n.Vars(e.Params))
}

// replaceParams performs the same "{name}" substitution the teacher's
// EvaluationError.Error used, for the un-localized default message.
func replaceParams(message string, params map[string]any) string {
	if len(params) == 0 {
		return message
	}
	out := message
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"}", toDisplayString(v))
	}
	return out
}
