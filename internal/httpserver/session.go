package httpserver

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartsvc "podshop/internal/service/cart"
)

// sessionHeader scopes the cart/coupon/zone state to one browser
// session. A missing header gets a fresh id, echoed back in the response.
const sessionHeader = "X-Session-ID"

func sessionID(c *gin.Context) string {
	sid := strings.TrimSpace(c.GetHeader(sessionHeader))
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Header(sessionHeader, sid)
	return sid
}

func (h *handlers) cartStore(c *gin.Context) *cartsvc.Store {
	return cartsvc.NewStore(sessionID(c), h.deps.Sessions, h.logger)
}
