package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/app/games"
	"github.com/preston-bernstein/cfb-meta-service/internal/config"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers/fixture"
	"github.com/preston-bernstein/cfb-meta-service/internal/teststubs"
	"github.com/preston-bernstein/cfb-meta-service/internal/testutil"
)

type stubPoller struct {
	startCalls atomic.Int32
	stopCalls  atomic.Int32
	err        error
}

func (p *stubPoller) Start(ctx context.Context) {
	_ = ctx
	p.startCalls.Add(1)
}

func (p *stubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopCalls.Add(1)
	return p.err
}

func disabledMetrics() config.MetricsConfig {
	return config.MetricsConfig{Enabled: false}
}

func TestServerServesHealthReadyAndGames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &teststubs.StubProvider{Doc: fixture.Sample(), Notify: make(chan struct{})}
	cfg := config.Config{
		Metrics: disabledMetrics(),
		Poll:    config.PollConfig{Enabled: true, Interval: 5 * time.Millisecond},
	}
	srv := newServerWithProvider(cfg, nil, provider)
	srv.poller.Start(ctx)
	defer func() { _ = srv.poller.Stop(context.Background()) }()

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for !srv.gamesService.Status().IsReady() {
		if time.Now().After(deadline) {
			t.Fatal("service never became ready")
		}
		time.Sleep(5 * time.Millisecond)
	}

	router := srv.Handler()

	healthRec := testutil.ServeRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	testutil.AssertStatus(t, healthRec, http.StatusOK)

	readyRec := testutil.ServeRequest(router, httptest.NewRequest(http.MethodGet, "/ready", nil))
	testutil.AssertStatus(t, readyRec, http.StatusOK)

	gamesRec := testutil.ServeRequest(router, httptest.NewRequest(http.MethodGet, "/games?date=2023-10-21&top=all", nil))
	testutil.AssertStatus(t, gamesRec, http.StatusOK)

	var ranking games.Ranking
	if err := json.NewDecoder(gamesRec.Body).Decode(&ranking); err != nil {
		t.Fatalf("failed to decode games response: %v", err)
	}
	if ranking.Date != "2023-10-21" {
		t.Fatalf("expected requested date echoed, got %q", ranking.Date)
	}
	if len(ranking.Games) != 4 {
		t.Fatalf("expected 4 ranked games, got %d", len(ranking.Games))
	}
	for i := 1; i < len(ranking.Games); i++ {
		if ranking.Games[i].Interest > ranking.Games[i-1].Interest {
			t.Fatalf("games not ordered by interest: %v", ranking.Games)
		}
	}
}

func TestReadyUnavailableBeforeFirstFetch(t *testing.T) {
	cfg := config.Config{Metrics: disabledMetrics()}
	srv := newServerWithProvider(cfg, nil, &teststubs.StubProvider{Doc: fixture.Sample()})

	rec := testutil.ServeRequest(srv.Handler(), httptest.NewRequest(http.MethodGet, "/ready", nil))
	testutil.AssertStatus(t, rec, http.StatusServiceUnavailable)
}

func TestServerMapsProviderFailureToBadGateway(t *testing.T) {
	cfg := config.Config{Metrics: disabledMetrics()}
	provider := &teststubs.StubProvider{Err: context.DeadlineExceeded}
	srv := newServerWithProvider(cfg, nil, provider)

	rec := testutil.ServeRequest(srv.Handler(), httptest.NewRequest(http.MethodGet, "/games?date=2023-10-21", nil))
	testutil.AssertStatus(t, rec, http.StatusBadGateway)

	if status := srv.gamesService.Status(); status.ConsecutiveFailures != 1 {
		t.Fatalf("expected one recorded failure, got %+v", status)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:     "0",
		Provider: config.ProviderFixture,
		Metrics:  disabledMetrics(),
		Poll:     config.PollConfig{Enabled: true},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.poller == nil {
		t.Fatalf("expected poller when polling is enabled")
	}
}

func TestNewSkipsPollerWhenDisabled(t *testing.T) {
	srv := New(config.Config{Provider: config.ProviderFixture, Metrics: disabledMetrics()}, nil)
	if srv.poller != nil {
		t.Fatalf("expected no poller when polling is disabled")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls.Load() != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls.Load())
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &stubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &stubPoller{err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}
	logger, buf := testutil.NewBufferLogger()

	srv := newServerWithDeps(config.Config{}, logger, nil, httpSrv, p)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	testutil.AssertLogContains(t, buf, "failed to stop poller")
	testutil.AssertLogContains(t, buf, "shutdown complete")
}

func TestGracefulShutdownWithoutPoller(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, nil)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestRunReturnsListenErrorAndShutsDown(t *testing.T) {
	plr := &stubPoller{}
	httpSrv := &testutil.ErrHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, plr)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()

	select {
	case err := <-done:
		if err == nil || err.Error() != "listen failure" {
			t.Fatalf("expected listen failure, got %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after listen failure")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected Shutdown after listen failure, got %d", httpSrv.ShutdownCalls)
	}
	if plr.stopCalls.Load() != 1 {
		t.Fatalf("expected poller stopped after listen failure, got %d", plr.stopCalls.Load())
	}
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &stubPoller{}
	httpSrv := testutil.NewServingHTTPServer(":0")
	metricsSrv := testutil.NewServingHTTPServer(":0")
	stopped := false

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, plr)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.startCalls.Load() != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.startCalls.Load())
	}
	if plr.stopCalls.Load() != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.stopCalls.Load())
	}
	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected both servers shut down, got http=%d metrics=%d", httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls)
	}
	if !stopped {
		t.Fatalf("expected metrics exporter shutdown")
	}
}

func TestHandlerRoutesThroughMiddleware(t *testing.T) {
	srv := newServerWithProvider(config.Config{Metrics: disabledMetrics()}, nil, &teststubs.StubProvider{Doc: fixture.Sample()})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header from middleware")
	}
}
