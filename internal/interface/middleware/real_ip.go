package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP sets the client IP into Gin context (key: "real_ip").
// Proxy headers are only honoured when trustProxy is set, otherwise the socket peer is used:
// CF-Connecting-IP first, then the left-most X-Forwarded-For entry.
func RealIP(trustProxy bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.RemoteIP()
		if trustProxy {
			if p := proxiedIP(c); p != "" {
				ip = p
			}
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}

func proxiedIP(c *gin.Context) string {
	if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
		if ip := net.ParseIP(cf); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip.String()
		}
	}
	return ""
}
