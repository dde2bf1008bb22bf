package mcp_tools

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/humanbelnik/moviepick/internal/model"
	usecase_preferences "github.com/humanbelnik/moviepick/internal/usecase/preferences"
)

const (
	RecommendMoviesTool = "recommendMovies"
	MovieFeedbackTool   = "movieFeedback"
)

type Tools struct {
	uc     *usecase_preferences.Usecase
	logger *slog.Logger

	defaultSession   model.SessionID
	useClientSession bool
}

type Option func(*Tools)

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tools) {
		t.logger = logger
	}
}

// WithClientSessions scopes preferences to the transport's client session
// instead of the shared default session.
func WithClientSessions() Option {
	return func(t *Tools) {
		t.useClientSession = true
	}
}

func New(uc *usecase_preferences.Usecase, defaultSession model.SessionID, opts ...Option) *Tools {
	if defaultSession == model.EmptySessionID {
		defaultSession = model.DefaultSessionID
	}

	t := &Tools{
		uc:             uc,
		logger:         slog.Default(),
		defaultSession: defaultSession,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool(RecommendMoviesTool,
			mcp.WithDescription(`Recommend up to 5 movies for a free-text request.

Genres mentioned in the request (action, comedy, drama, sci-fi, horror) are remembered for the session.
Saying you don't like, didn't enjoy, dislike or hate one of godfather, star wars, inception, avengers,
titanic or matrix excludes it from later recommendations.`),
			mcp.WithString("query",
				mcp.Description("What the user is in the mood for, e.g. \"I love action movies but I hate the matrix\""),
				mcp.Required(),
			),
			mcp.WithString("session_id",
				mcp.Description("Optional: preferences session to use instead of the connection's own session"),
			),
		),
		t.handleRecommend,
	)

	s.AddTool(
		mcp.NewTool(MovieFeedbackTool,
			mcp.WithDescription("Tell the recommender whether the user liked a movie. Disliked movies are never recommended again in this session."),
			mcp.WithString("movie",
				mcp.Description("Movie title, e.g. \"Inception\""),
				mcp.Required(),
			),
			mcp.WithBoolean("liked",
				mcp.Description("true if the user liked the movie, false otherwise"),
				mcp.Required(),
			),
			mcp.WithString("session_id",
				mcp.Description("Optional: preferences session to use instead of the connection's own session"),
			),
		),
		t.handleFeedback,
	)
}

func (t *Tools) handleRecommend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	session := t.resolveSession(ctx, request)
	rec, err := t.uc.RecommendMovies(ctx, session, query)
	if err != nil {
		return t.errorResult("failed to recommend movies", session, err), nil
	}

	return mcp.NewToolResultText(usecase_preferences.FormatRecommendation(rec)), nil
}

func (t *Tools) handleFeedback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	movie, err := request.RequireString("movie")
	if err != nil {
		return mcp.NewToolResultError("movie is required"), nil
	}
	liked, err := request.RequireBool("liked")
	if err != nil {
		return mcp.NewToolResultError("liked is required"), nil
	}

	session := t.resolveSession(ctx, request)
	fb, err := t.uc.MovieFeedback(ctx, session, movie, liked)
	if err != nil {
		return t.errorResult("failed to record feedback", session, err), nil
	}

	return mcp.NewToolResultText(fb.Message), nil
}

// resolveSession picks, in order: explicit session_id argument, the client
// session (when enabled), the default session.
func (t *Tools) resolveSession(ctx context.Context, request mcp.CallToolRequest) model.SessionID {
	if id := request.GetString("session_id", ""); id != "" {
		return model.SessionID(id)
	}
	if t.useClientSession {
		if cs := server.ClientSessionFromContext(ctx); cs != nil && cs.SessionID() != "" {
			return model.SessionID(cs.SessionID())
		}
	}
	return t.defaultSession
}

func (t *Tools) errorResult(msg string, session model.SessionID, err error) *mcp.CallToolResult {
	t.logger.Error(msg,
		slog.String("error", err.Error()),
		slog.String("session_id", string(session)),
	)

	if errors.Is(err, usecase_preferences.ErrInvalidInput) {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(msg)
}
