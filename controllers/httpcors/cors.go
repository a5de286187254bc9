package httpcors

import (
	"github.com/rs/cors"
)

// CorsSettings builds the CORS middleware for the configured frontend
// origins.
func CorsSettings(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Owner-Id"},
		AllowCredentials: true,
	})
}
