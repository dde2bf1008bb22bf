package app

import (
	"log"
	"log/slog"
	"os"

	"github.com/humanbelnik/moviepick/internal/config"
	http_init "github.com/humanbelnik/moviepick/internal/delivery/http/init"
	http_recommend "github.com/humanbelnik/moviepick/internal/delivery/http/recommend"
	http_session "github.com/humanbelnik/moviepick/internal/delivery/http/session"
	http_swagger "github.com/humanbelnik/moviepick/internal/delivery/http/swagger"
	mcp_tools "github.com/humanbelnik/moviepick/internal/delivery/mcp"
	ws_session "github.com/humanbelnik/moviepick/internal/delivery/ws/session"
	infra_memory_preferences "github.com/humanbelnik/moviepick/internal/infra/memory/preferences"
	infra_pg_init "github.com/humanbelnik/moviepick/internal/infra/postgres/init"
	infra_postgres_preferences "github.com/humanbelnik/moviepick/internal/infra/postgres/preferences"
	infra_redis_init "github.com/humanbelnik/moviepick/internal/infra/redis/init"
	infra_redis_preferences "github.com/humanbelnik/moviepick/internal/infra/redis/preferences"
	"github.com/humanbelnik/moviepick/internal/model"
	usecase_preferences "github.com/humanbelnik/moviepick/internal/usecase/preferences"
)

func Go(cfg *config.Config) {
	// stdout is the protocol channel for the stdio transport
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	store := newStore(cfg)

	if cfg.MCP.Transport == config.TransportStdio {
		uc := usecase_preferences.New(store)
		tools := mcp_tools.New(uc, model.SessionID(cfg.MCP.DefaultSession), mcp_tools.WithLogger(logger))
		if err := mcp_tools.ServeStdio(mcp_tools.NewServer(cfg.MCP, tools)); err != nil {
			log.Fatalf("mcp stdio server stopped: %v", err)
		}
		return
	}

	hub := ws_session.New(logger)
	uc := usecase_preferences.New(store, usecase_preferences.WithNotifier(hub))

	tools := mcp_tools.New(uc, model.SessionID(cfg.MCP.DefaultSession),
		mcp_tools.WithLogger(logger),
		mcp_tools.WithClientSessions(),
	)
	mcpServer := mcp_tools.NewServer(cfg.MCP, tools)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swagger.New(""))
	controllerPool.Add(http_session.New(uc, http_session.WithLogger(logger)))
	controllerPool.Add(http_recommend.New(uc, http_recommend.WithLogger(logger)))
	controllerPool.Add(ws_session.NewController(uc, hub))
	controllerPool.Add(mcp_tools.NewController(mcpServer))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

func newStore(cfg *config.Config) usecase_preferences.Store {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		return infra_redis_preferences.New(redisConn, cfg.Redis.KeyPrefix, cfg.Storage.TTL)
	case config.StoragePostgres:
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		return infra_postgres_preferences.New(pgConn)
	default:
		return infra_memory_preferences.New()
	}
}
