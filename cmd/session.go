package cmd

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/RichMan125/srm-ui/internal/auth"
	"github.com/RichMan125/srm-ui/internal/backend"
	"github.com/RichMan125/srm-ui/internal/config"
	"github.com/RichMan125/srm-ui/internal/locale"
	"github.com/RichMan125/srm-ui/internal/logging"
	"github.com/RichMan125/srm-ui/internal/manifest"
	"github.com/RichMan125/srm-ui/internal/notify"
	"github.com/RichMan125/srm-ui/internal/router"
	"github.com/RichMan125/srm-ui/internal/storage"
	"github.com/RichMan125/srm-ui/internal/tabs"
)

// session bundles everything a command needs to work with the signed-in user.
type session struct {
	cfg    config.Config
	log    zerolog.Logger
	tr     *locale.Translator
	host   string
	kv     storage.Store
	router *router.Router
	tabs   *tabs.Cache
	store  *auth.Store
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
	if flagStorage != "" {
		cfg.Storage.Backend = flagStorage
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	return cfg, nil
}

// openSession wires config, storage, the backend client and the session store.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.NewLoggerWithWriter(cfg.LogLevel, cmd.ErrOrStderr())

	m, err := manifest.GetEndpoints(cfg)
	if err != nil {
		return nil, err
	}
	kv, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("backend", cfg.Storage.Backend).Str("base_url", m.HTTPBaseURL()).Msg("session opened")

	api := backend.New(m.HTTPBaseURL(), m.HTTP,
		backend.WithTimeout(cfg.RequestTimeout.Std()),
		backend.WithLogger(log),
		backend.WithUserAgent("srm/"+Version),
	)

	s := &session{
		cfg:    cfg,
		log:    log,
		tr:     locale.New(cfg.Locale),
		host:   m.HTTPBaseURL(),
		kv:     kv,
		router: router.New(kv, cfg.Auth.HomeRoute),
		tabs:   tabs.New(kv),
	}
	s.store = auth.New(api, kv, auth.Options{
		Notifier:   notify.NewTerminal(cmd.ErrOrStderr()),
		Navigator:  s.router,
		Tabs:       s.tabs,
		Routes:     s.router,
		Translator: s.tr,
		Logger:     &log,
		Policy: auth.Policy{
			RouteMode:       cfg.Auth.RouteMode,
			StaticSuperRole: cfg.Auth.StaticSuperRole,
			RefreshSkew:     cfg.Auth.RefreshSkew.Std(),
		},
	})
	return s, nil
}

// Close releases the storage backend when it holds a connection.
func (s *session) Close() {
	if c, ok := s.kv.(io.Closer); ok {
		if err := c.Close(); err != nil {
			s.log.Debug().Err(err).Msg("close storage")
		}
	}
}
