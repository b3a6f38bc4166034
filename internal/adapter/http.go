package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
)

// ProbeConfig points a HealthProbe at a gateway.
type ProbeConfig struct {
	// Address is a base URL or a listen address such as ":8000".
	Address string
	Timeout time.Duration
}

const defaultProbeTimeout = 3 * time.Second

type healthProbe struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHealthProbe constructs a resty based [HealthProbe]. A listen address
// without host is probed on the loopback interface.
func NewHealthProbe(cfg ProbeConfig, logger *logger.Logger) (HealthProbe, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid probe address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	return &healthProbe{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		host, port, err := net.SplitHostPort(raw)
		if err != nil {
			return "", err
		}
		if host == "" {
			host = "127.0.0.1"
		}
		raw = "http://" + net.JoinHostPort(host, port)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Check implements [HealthProbe].
func (p *healthProbe) Check(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnhealthy, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var body map[string]string
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedBody, err)
	}
	if len(body) != 1 || body["Hello"] != "World" {
		return fmt.Errorf("%w: %s", ErrUnexpectedBody, resp.String())
	}

	p.logger.Debug().Dur("latency", resp.Time()).Msg("gateway healthy")
	return nil
}
