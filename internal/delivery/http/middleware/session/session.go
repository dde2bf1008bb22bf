package http_session_middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviepick/internal/delivery/http/common"
	"github.com/humanbelnik/moviepick/internal/model"
)

const (
	sessionParam = "session_id"
	contextKey   = "session_id"
)

var validSessionID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Required rejects requests whose :session_id path parameter is not a
// plain token and stores the parsed id for SessionID.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(sessionParam)
		if !validSessionID.MatchString(id) {
			c.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid session id",
			})
			c.Abort()
			return
		}

		c.Set(contextKey, model.SessionID(id))
		c.Next()
	}
}

func SessionID(c *gin.Context) model.SessionID {
	v, ok := c.Get(contextKey)
	if !ok {
		return model.EmptySessionID
	}
	id, _ := v.(model.SessionID)
	return id
}
