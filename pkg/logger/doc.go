// Package logger builds *slog.Logger instances configured by functional
// options and decorated with context extractors.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler depending on the
// configured Format and wraps it with LogHandlerDecorator, which calls every
// registered ContextExtractor on each record. Request-scoped values such as
// the request id, the resolved locale and the resolved timezone therefore show
// up in every log line written with a request context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        i18n.LoggerExtractor(),
//	        timezone.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers (Error, Locale, Timezone, Component, ...) keep key names
// consistent. Error and Errors return an empty Attr for nil errors, so
//
//	log.Info("request finished", logger.Error(err))
//
// needs no nil check.
package logger
