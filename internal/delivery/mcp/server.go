package mcp_tools

import (
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"

	"github.com/humanbelnik/moviepick/internal/config"
)

const instructions = `Movie recommendations that learn from the conversation.
Call recommendMovies with the user's request; call movieFeedback when the user reacts to a specific movie.`

func NewServer(cfg config.MCP, tools *Tools) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	tools.Register(s)
	return s
}

func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// Controller mounts the streamable HTTP transport on the gin router.
type Controller struct {
	handler *server.StreamableHTTPServer
}

func NewController(s *server.MCPServer) *Controller {
	return &Controller{
		handler: server.NewStreamableHTTPServer(s),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	h := gin.WrapH(c.handler)
	router.GET("/mcp", h)
	router.POST("/mcp", h)
	router.DELETE("/mcp", h)
}
