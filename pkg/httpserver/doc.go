// Package httpserver runs an http.Handler with graceful shutdown, timeouts
// taken from Config and structured logging.
//
// Run binds the listener, fires start hooks and blocks until the context is
// cancelled, SIGINT/SIGTERM arrives or Shutdown is called. Shutdown drains
// in-flight requests within the configured timeout and then fires stop hooks.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler serve the health probes; readiness
// runs named Check functions such as a Redis ping.
package httpserver
