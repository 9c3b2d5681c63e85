// Package keepalive pings the service's own public URL so free-tier hosts
// do not idle the process out.
package keepalive

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/matchops/club-manager/internal/platform/logging"
)

const defaultInterval = 5 * time.Minute

type Config struct {
	URL      string
	Interval time.Duration
	Timeout  time.Duration
}

type Pinger struct {
	client   *fasthttp.Client
	url      string
	interval time.Duration
	timeout  time.Duration
	logger   *logging.Logger
}

func NewPinger(cfg Config, logger *logging.Logger) *Pinger {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Pinger{
		client:   &fasthttp.Client{},
		url:      strings.TrimSpace(cfg.URL),
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Run pings on every tick until ctx is canceled. Failures are logged, never
// fatal: the next tick retries.
func (p *Pinger) Run(ctx context.Context) {
	if p.url == "" {
		p.logger.Info("keepalive disabled, no url configured")
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("keepalive started", "url", p.url, "interval", p.interval)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("keepalive stopped")
			return
		case <-ticker.C:
			if err := p.Ping(); err != nil {
				p.logger.Warn("keepalive ping failed", "url", p.url, "error", err)
			}
		}
	}
}

func (p *Pinger) Ping() error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := p.client.DoTimeout(req, resp, p.timeout); err != nil {
		return crerr.Wrap(err, "keepalive request")
	}
	if resp.StatusCode()/100 != 2 {
		return crerr.Newf("keepalive request: status=%d", resp.StatusCode())
	}

	return nil
}
