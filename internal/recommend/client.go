package recommend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

// Config configures the HTTP recommendation client.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Client calls the recommendation service over HTTP through a go-zero httpc
// service, which adds circuit breaking.
type Client struct {
	endpoint string
	svc      httpc.Service
}

// New returns a Recommender for cfg. A blank endpoint yields Unavailable.
func New(cfg Config) Recommender {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return Unavailable
	}
	return NewClient(cfg)
}

// NewClient creates an HTTP client for cfg.Endpoint.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// one breaker per upstream endpoint
	svc := httpc.NewServiceWithClient("recommend:"+cfg.Endpoint, &http.Client{Timeout: timeout})

	return &Client{
		endpoint: cfg.Endpoint,
		svc:      svc,
	}
}

// Recommend posts the font name and prompt, and returns the recommendation.
func (c *Client) Recommend(ctx context.Context, fontName string) (*Response, error) {
	fontName = strings.TrimSpace(fontName)
	if fontName == "" {
		return nil, ErrEmptyFontName
	}

	start := time.Now()
	resp, err := c.do(ctx, fontName)
	requestDuration.ObserveFloat(time.Since(start).Seconds())
	if err != nil {
		requestFailures.Inc()
		logx.WithContext(ctx).Errorw("recommendation request failed",
			logx.Field("font", fontName), logx.Field("error", err.Error()))
		return nil, err
	}

	return resp, nil
}

func (c *Client) do(ctx context.Context, fontName string) (*Response, error) {
	httpResp, err := c.svc.Do(ctx, http.MethodPost, c.endpoint, Request{
		FontName: fontName,
		Prompt:   Prompt(fontName),
	})
	if err != nil {
		return nil, fmt.Errorf("call recommendation service: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("recommendation service returned status: %s", httpResp.Status)
	}

	var resp Response
	if err := httpc.Parse(httpResp, &resp); err != nil {
		return nil, fmt.Errorf("parse recommendation response: %w", err)
	}
	if strings.TrimSpace(resp.Recommendation) == "" {
		return nil, ErrEmptyRecommendation
	}

	return &resp, nil
}
