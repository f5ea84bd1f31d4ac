package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"siliconguide.io/silicon-guide/internal/api"
	"siliconguide.io/silicon-guide/internal/assistant"
	"siliconguide.io/silicon-guide/internal/config"
	"siliconguide.io/silicon-guide/internal/core"
	"siliconguide.io/silicon-guide/internal/discovery"
	"siliconguide.io/silicon-guide/internal/handbook"
	"siliconguide.io/silicon-guide/internal/store"
)

// app holds the wired services shared by every command.
type app struct {
	handbook *handbook.Store
	store    store.ConversationStore
	chat     *core.ChatService
	agent    *discovery.Agent
}

func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	hb, err := handbook.Open(cfg.Handbook.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load handbook: %w", err)
	}

	st, err := store.Open(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open conversation store: %w", err)
	}
	logger.Debug("conversation store ready", zap.String("driver", cfg.Store.Driver))

	chat := core.NewChatService(st, assistant.Default(), hb, logger.Named("chat"),
		core.WithResponseDelay(cfg.Assistant.ResponseDelay))

	return &app{
		handbook: hb,
		store:    st,
		chat:     chat,
		agent:    discovery.New(discovery.WithMaxResults(cfg.Discovery.MaxResults)),
	}, nil
}

func (a *app) handler(logger *zap.Logger) http.Handler {
	h := api.NewAPIHandler(a.chat, a.handbook, a.agent, logger.Named("api"))
	return api.NewRouter(h, logger.Named("http"))
}

func (a *app) Close() error {
	return a.store.Close()
}
