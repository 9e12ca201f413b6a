package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/dmitrymomot/localekit/internal/web"
	"github.com/dmitrymomot/localekit/pkg/config"
	"github.com/dmitrymomot/localekit/pkg/httpserver"
	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/redis"
	"github.com/dmitrymomot/localekit/pkg/requestid"
	"github.com/dmitrymomot/localekit/pkg/timezone"
	"github.com/dmitrymomot/localekit/pkg/user"
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	Name          string `env:"APP_NAME" envDefault:"localekit"`
	LogLevel      string `env:"LOG_LEVEL"`
	LogFormat     string `env:"LOG_FORMAT"`
	UserDirectory string `env:"USER_DIRECTORY" envDefault:"memory"`
	UsersFile     string `env:"USERS_FILE"`
	UserKeyPrefix string `env:"USER_KEY_PREFIX" envDefault:"user:"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg    appConfig
		httpCfg   httpserver.Config
		localeCfg locale.Config
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&httpCfg),
		config.Load(&localeCfg),
	); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithLevelName(appCfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			user.LoggerExtractor(),
			i18n.LoggerExtractor(),
			timezone.LoggerExtractor(),
		),
	}
	if format, ok := logger.ParseFormat(appCfg.LogFormat); ok {
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	resolver, err := locale.NewResolver(localeCfg, locale.WithLogger(log.With(logger.Component("locale"))))
	if err != nil {
		return err
	}

	translator, err := web.NewTranslator(ctx, resolver.FallbackLocale(), log.With(logger.Component("i18n")))
	if err != nil {
		return err
	}
	for _, lang := range resolver.SupportedLocales() {
		if !translator.HasTranslation(lang, "home_title") {
			log.WarnContext(ctx, "Supported locale has no translations", logger.Locale(lang))
		}
	}

	users, checks, closeUsers, err := openDirectory(ctx, appCfg)
	if err != nil {
		return err
	}
	defer closeUsers()

	router := web.NewRouter(web.Config{
		Translator:  translator,
		Resolver:    resolver,
		Users:       users,
		Logger:      log,
		ReadyChecks: checks,
	})

	log.InfoContext(ctx, "Starting server",
		slog.Any("locales", resolver.SupportedLocales()),
		logger.Locale(resolver.FallbackLocale()),
		logger.Timezone(resolver.FallbackTimezone()),
		slog.String("user_directory", appCfg.UserDirectory),
	)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

// openDirectory builds the configured user directory together with its
// readiness checks and a cleanup func.
func openDirectory(ctx context.Context, cfg appConfig) (user.Directory, []httpserver.Check, func(), error) {
	switch strings.ToLower(cfg.UserDirectory) {
	case "", "memory":
		dir, err := loadMemoryDirectory(cfg.UsersFile)
		return dir, nil, func() {}, err

	case "redis":
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, nil, nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		checks := []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}}
		closeFn := func() { _ = client.Close() }
		return user.NewRedisDirectory(client, cfg.UserKeyPrefix), checks, closeFn, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown USER_DIRECTORY %q: want memory or redis", cfg.UserDirectory)
	}
}

func loadMemoryDirectory(path string) (*user.MemoryDirectory, error) {
	if path == "" {
		return web.DefaultUsers()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return user.LoadYAML(f)
}
