// Package hirefraction fetches the baseball player batch published by the
// HireFraction test API.
package hirefraction

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	DefaultURL          = "https://api.hirefraction.com/api/test/baseball"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 8 << 20
	maxErrorBodyPreview = 512
)

type ClientConfig struct {
	HTTPClient   *fasthttp.Client
	URL          string
	Timeout      time.Duration
	MaxBodyBytes int
	Logger       *logging.Logger
}

type Client struct {
	httpClient *fasthttp.Client
	url        string
	timeout    time.Duration
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	rawURL := strings.TrimSpace(cfg.URL)
	if rawURL == "" {
		rawURL = DefaultURL
	}
	sourceURL, err := validateHTTPURL(rawURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid SOURCE_URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		maxBody := cfg.MaxBodyBytes
		if maxBody <= 0 {
			maxBody = DefaultMaxBodyBytes
		}
		httpClient = &fasthttp.Client{
			Name:                "baseball-stats-importer",
			MaxResponseBodySize: maxBody,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		}
	}

	return &Client{
		httpClient: httpClient,
		url:        sourceURL,
		timeout:    timeout,
		logger:     logger,
	}, nil
}

// FetchPlayers performs a single GET and decodes the JSON array of flat
// player records. Non-2xx statuses and transport errors are returned as
// errors; an empty body yields no records.
func (c *Client) FetchPlayers(ctx context.Context) ([]usecase.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	started := time.Now()
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Wrapf(err, "get %s", c.url)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status < 200 || status >= 300 {
		return nil, crerr.Newf("get %s: status=%d body=%s", c.url, status, abbreviateBody(body))
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "fetched upstream player records",
		"url", c.url,
		"records", len(records),
		"bytes", len(body),
		"duration", time.Since(started),
	)
	return records, nil
}

func decodeRecords(body []byte) ([]usecase.RawRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []usecase.RawRecord{}, nil
	}

	var records []usecase.RawRecord
	if err := sonic.Unmarshal(trimmed, &records); err != nil {
		return nil, crerr.Wrap(err, "decode player records")
	}
	return records, nil
}

func validateHTTPURL(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", raw, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", raw)
	}
	return raw, nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxErrorBodyPreview {
		return text
	}
	return text[:maxErrorBodyPreview] + "..."
}
