package ws_session

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/moviepick/internal/delivery/http/common"
	http_session_middleware "github.com/humanbelnik/moviepick/internal/delivery/http/middleware/session"
	usecase_preferences "github.com/humanbelnik/moviepick/internal/usecase/preferences"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Controller struct {
	uc     *usecase_preferences.Usecase
	hub    *Hub
	logger *slog.Logger
}

func NewController(uc *usecase_preferences.Usecase, hub *Hub) *Controller {
	return &Controller{
		uc:     uc,
		hub:    hub,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sessions/:session_id/ws", http_session_middleware.Required(), c.subscribe)
}

// @Summary Подписка на изменения предпочтений
// @Description Websocket: сначала PREFERENCES_SNAPSHOT, затем PREFERENCES_UPDATED после каждого сохранения
// @Tags Sessions
// @Param session_id path string true "Идентификатор сессии"
// @Router /sessions/{session_id}/ws [get]
func (c *Controller) subscribe(ctx *gin.Context) {
	session := http_session_middleware.SessionID(ctx)

	p, err := c.uc.Preferences(ctx.Request.Context(), session)
	if err != nil {
		c.logger.Error("failed to load preferences",
			slog.String("error", err.Error()),
			slog.String("session_id", string(session)),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket",
			slog.String("error", err.Error()),
		)
		return
	}

	client := NewClient(c.hub, conn, session)

	snapshot, _ := json.Marshal(NewEvent(EventPreferencesSnapshot, session, p))
	client.Send <- snapshot

	c.hub.RegisterClient(client)

	go c.hub.StartClientReading(client)
	go c.hub.StartClientWriting(client)
}
