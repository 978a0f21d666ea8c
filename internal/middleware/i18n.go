// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// I18nMiddleware resolves the display language for the request. The site
// is bilingual: Arabic and English, defaulting to English.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Explicit query override first, then Accept-Language.
		lang := c.Query("lang")
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}

		if lang != "" {
			// Handle cases like "ar-SY,ar;q=0.9,en;q=0.8"
			langs := strings.Split(lang, ",")
			if len(langs) > 0 {
				firstLang := strings.TrimSpace(strings.Split(langs[0], ";")[0])
				if strings.HasPrefix(strings.ToLower(firstLang), "ar") {
					lang = "ar"
				} else {
					lang = "en"
				}
			}
		} else {
			lang = "en"
		}

		c.Set("lang", lang)
		c.Next()
	}
}
