package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	wordseekhttp "github.com/fwojciec/wordseek/http"
	wordseekprom "github.com/fwojciec/wordseek/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout bounds how long in-flight requests may finish on exit.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	reg := prometheus.NewRegistry()
	metrics := wordseekprom.NewMetrics(reg)

	server := wordseekhttp.NewServer(
		wordseekprom.NewFetcher(deps.Fetcher, metrics),
		wordseekprom.NewExtractor(deps.Extractor, metrics),
		wordseekhttp.WithServerLogger(deps.Logger),
		wordseekhttp.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	srv := &http.Server{
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	fmt.Fprintf(deps.Stderr, "Listening on %s\n", ln.Addr())

	select {
	case err := <-errCh:
		return err
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
