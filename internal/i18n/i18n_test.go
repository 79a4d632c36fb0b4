package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name   string
		key    string
		locale string
		want   string
	}{
		{name: "english", key: ErrKeyCannotProduce, locale: "en", want: "This size cannot be produced on the selected material"},
		{name: "spanish", key: ErrKeyMaterialNotFound, locale: "es", want: "Material no encontrado"},
		{name: "french", key: ErrKeyRateLimitExceeded, locale: "fr", want: "Trop de requêtes, veuillez réessayer plus tard"},
		{name: "empty locale falls back to english", key: ErrKeyNotFound, locale: "", want: "Not found"},
		{name: "unknown locale falls back to english", key: ErrKeyNotFound, locale: "zz", want: "Not found"},
		{name: "unknown key returns the key", key: "error.nope", locale: "en", want: "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: "en"},
		{name: "plain language", header: "es", want: "es"},
		{name: "region variant", header: "fr-CA,fr;q=0.9", want: "fr"},
		{name: "quality list", header: "es-MX,es;q=0.9,en;q=0.8", want: "es"},
		{name: "unsupported language", header: "de-DE,de;q=0.9", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.want, GetLocale(c))
		})
	}
}
