// Package i18n provides internationalization support for the sheet pricing
// service. It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,es;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.not_found":             "Not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.timeout":               "Request timed out",
			"error.cannot_produce":        "This size cannot be produced on the selected material",
			"error.invalid_configuration": "Invalid sheet or pricing configuration",
			"error.material_not_found":    "Material not found",
			"error.rule_set_not_found":    "Rule set not found",
			"error.service_unavailable":   "Service temporarily unavailable",

			"success.quote_calculated": "Quote calculated successfully",
		},
		"es": {
			"error.invalid_request":       "Solicitud inválida",
			"error.invalid_request_body":  "Cuerpo de la solicitud inválido",
			"error.internal_error":        "Ocurrió un error inesperado",
			"error.not_found":             "No encontrado",
			"error.rate_limit_exceeded":   "Demasiadas solicitudes, intente de nuevo más tarde",
			"error.conflict":              "Conflicto",
			"error.timeout":               "La solicitud expiró",
			"error.cannot_produce":        "Este tamaño no puede producirse en el material seleccionado",
			"error.invalid_configuration": "Configuración de lámina o precios inválida",
			"error.material_not_found":    "Material no encontrado",
			"error.rule_set_not_found":    "Conjunto de reglas no encontrado",
			"error.service_unavailable":   "Servicio temporalmente no disponible",

			"success.quote_calculated": "Cotización calculada con éxito",
		},
		"fr": {
			"error.invalid_request":       "Requête invalide",
			"error.invalid_request_body":  "Corps de requête invalide",
			"error.internal_error":        "Une erreur inattendue s'est produite",
			"error.not_found":             "Introuvable",
			"error.rate_limit_exceeded":   "Trop de requêtes, veuillez réessayer plus tard",
			"error.conflict":              "Conflit",
			"error.timeout":               "La requête a expiré",
			"error.cannot_produce":        "Cette taille ne peut pas être produite sur le matériau sélectionné",
			"error.invalid_configuration": "Configuration de feuille ou de tarification invalide",
			"error.material_not_found":    "Matériau introuvable",
			"error.rule_set_not_found":    "Ensemble de règles introuvable",
			"error.service_unavailable":   "Service temporairement indisponible",

			"success.quote_calculated": "Devis calculé avec succès",
		},
	}
}
