package middleware

import (
	"Gobang/config"
	"Gobang/utils"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Name of the cookie holding the player session
const SessionName = "gobangsession"

func SetUpMiddleware(r *gin.Engine, cfg config.Config) {
	r.Use(utils.Logger(), utils.ErrorHandler())

	r.Use(cors.New(CorsConfig(cfg.CorsOrigins)))

	store := cookie.NewStore([]byte(cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		Secure:   cfg.UseHTTPS,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(SessionName, store))
}

// CorsConfig allows every listed origin with credentials. A "*" entry echoes
// the caller's origin, since browsers reject a literal wildcard with credentials.
func CorsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowOriginFunc = func(string) bool { return true }
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
