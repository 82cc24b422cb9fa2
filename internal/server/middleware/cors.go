package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORSMaxAge is how long browsers may cache a preflight answer, in seconds.
const CORSMaxAge = 600

// CORS allows browser callers from origins. "*" admits any origin and
// entries may use a single wildcard such as "https://*.example.com".
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(corsOptions(origins))
}

func corsOptions(origins []string) cors.Options {
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         CORSMaxAge,
	}
}
