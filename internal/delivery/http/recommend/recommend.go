package http_recommend

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviepick/internal/delivery/http/common"
	http_session_middleware "github.com/humanbelnik/moviepick/internal/delivery/http/middleware/session"
	"github.com/humanbelnik/moviepick/internal/model"
	usecase_preferences "github.com/humanbelnik/moviepick/internal/usecase/preferences"
)

// RecommendRequestDTO запрос рекомендаций
type RecommendRequestDTO struct {
	Query string `json:"query" example:"I love action movies but I hate the matrix"`
}

// RecommendResponseDTO рекомендации и текст ответа инструмента
type RecommendResponseDTO struct {
	Query    string   `json:"query" example:"I love action movies"`
	Genres   []string `json:"genres" example:"action"`
	Movies   []string `json:"movies" example:"Die Hard,The Dark Knight"`
	Excluded []string `json:"excluded" example:"matrix"`
	Text     string   `json:"text"`
}

// FeedbackRequestDTO отзыв о фильме
type FeedbackRequestDTO struct {
	Movie string `json:"movie" binding:"required" example:"Inception"`
	Liked *bool  `json:"liked" binding:"required" example:"false"`
}

// FeedbackResponseDTO подтверждение отзыва
type FeedbackResponseDTO struct {
	Movie   string `json:"movie" example:"Inception"`
	Liked   bool   `json:"liked" example:"false"`
	Message string `json:"message"`
}

func ConvertFromRecommendation(r model.Recommendation) RecommendResponseDTO {
	return RecommendResponseDTO{
		Query:    r.Query,
		Genres:   r.Genres,
		Movies:   r.Movies,
		Excluded: r.Excluded,
		Text:     usecase_preferences.FormatRecommendation(r),
	}
}

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
	session := router.Group("/sessions/:session_id", http_session_middleware.Required())
	session.POST("/recommendations", c.recommend)
	session.POST("/feedback", c.feedback)
}

// @Summary Рекомендации фильмов
// @Description Извлекает жанры и нелюбимые фильмы из запроса, сохраняет их и возвращает до пяти фильмов
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param session_id path string true "Идентификатор сессии"
// @Param request body RecommendRequestDTO true "Текст запроса"
// @Success 200 {object} RecommendResponseDTO "Рекомендации"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /sessions/{session_id}/recommendations [post]
func (c *Controller) recommend(ctx *gin.Context) {
	session := http_session_middleware.SessionID(ctx)

	var req RecommendRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	rec, err := c.uc.RecommendMovies(ctx.Request.Context(), session, req.Query)
	if err != nil {
		c.writeError(ctx, "failed to recommend movies", session, err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromRecommendation(rec))
}

// @Summary Отзыв о фильме
// @Description Сохраняет явный отказ от фильма. Положительный отзыв только подтверждается
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param session_id path string true "Идентификатор сессии"
// @Param request body FeedbackRequestDTO true "Фильм и оценка"
// @Success 200 {object} FeedbackResponseDTO "Отзыв принят"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /sessions/{session_id}/feedback [post]
func (c *Controller) feedback(ctx *gin.Context) {
	session := http_session_middleware.SessionID(ctx)

	var req FeedbackRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	fb, err := c.uc.MovieFeedback(ctx.Request.Context(), session, req.Movie, *req.Liked)
	if err != nil {
		c.writeError(ctx, "failed to record feedback", session, err)
		return
	}

	ctx.JSON(http.StatusOK, FeedbackResponseDTO{
		Movie:   fb.Movie,
		Liked:   fb.Liked,
		Message: fb.Message,
	})
}

func (c *Controller) writeError(ctx *gin.Context, msg string, session model.SessionID, err error) {
	c.logger.Error(msg,
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
}
