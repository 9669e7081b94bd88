package middleware

import (
	"crypto/subtle"
	"net/http"

	"barber-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AdminSecretHeader carries the dashboard's shared secret on admin requests.
const AdminSecretHeader = "X-Admin-Secret"

const ctxIsAdminKey = "is_admin"

type AdminMiddleware struct {
	secret []byte
}

func NewAdminMiddleware(cfg config.Config) *AdminMiddleware {
	return &AdminMiddleware{
		secret: []byte(cfg.Admin.Secret),
	}
}

// RequireAdmin gates dashboard endpoints behind the shared secret. The
// comparison is constant-time so the header can't be probed byte by byte.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := []byte(c.GetHeader(AdminSecretHeader))
		if len(m.secret) == 0 || subtle.ConstantTimeCompare(provided, m.secret) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}

		c.Set(ctxIsAdminKey, true)
		c.Next()
	}
}

func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(ctxIsAdminKey)
	if !exists {
		return false
	}
	ok, _ := isAdmin.(bool)
	return ok
}
