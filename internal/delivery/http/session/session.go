package http_session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/moviepick/internal/delivery/http/common"
	http_session_middleware "github.com/humanbelnik/moviepick/internal/delivery/http/middleware/session"
	usecase_preferences "github.com/humanbelnik/moviepick/internal/usecase/preferences"
)

type Controller struct {
	uc     *usecase_preferences.Usecase
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_preferences.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions")
	sessions.POST("", c.create)

	session := sessions.Group("/:session_id", http_session_middleware.Required())
	session.GET("/preferences", c.preferences)
}

// CreateSessionResponseDTO ответ с идентификатором новой сессии
type CreateSessionResponseDTO struct {
	SessionID string `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// PreferencesResponseDTO накопленные предпочтения сессии
type PreferencesResponseDTO struct {
	Genres         []string `json:"genres" example:"action,sci-fi"`
	DislikedMovies []string `json:"disliked_movies" example:"matrix"`
}

// @Summary Создание сессии
// @Description Выдает новый идентификатор сессии. Предпочтения создаются пустыми при первом обращении
// @Tags Sessions
// @Produce json
// @Success 201 {object} CreateSessionResponseDTO "Сессия создана"
// @Router /sessions [post]
func (c *Controller) create(ctx *gin.Context) {
	id := uuid.New().String()
	c.logger.Info("session issued", slog.String("session_id", id))

	ctx.JSON(http.StatusCreated, CreateSessionResponseDTO{
		SessionID: id,
	})
}

// @Summary Предпочтения сессии
// @Description Возвращает жанры и нелюбимые фильмы, накопленные в сессии
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Идентификатор сессии"
// @Success 200 {object} PreferencesResponseDTO "Предпочтения"
// @Failure 400 {object} http_common.ErrorResponse "Некорректный идентификатор сессии"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /sessions/{session_id}/preferences [get]
func (c *Controller) preferences(ctx *gin.Context) {
	session := http_session_middleware.SessionID(ctx)

	p, err := c.uc.Preferences(ctx.Request.Context(), session)
	if err != nil {
		c.logger.Error("failed to load preferences",
			slog.String("error", err.Error()),
			slog.String("session_id", string(session)),
		)
		if errors.Is(err, usecase_preferences.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid input",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, PreferencesResponseDTO{
		Genres:         p.Genres,
		DislikedMovies: p.DislikedMovies,
	})
}
