package httpclient

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPClientConfig 配置参数
type HTTPClientConfig struct {
	Timeout    time.Duration // 请求超时时间
	RateLimit  int           // 每分钟请求次数, <=0 不限流
	MaxRetries int           // 最大重试次数, resty 只重试幂等请求, PostJSON 不会重试
	UserAgent  string
	APIKey     string // 可选, 以 Authorization: Bearer 发送
}

// HTTPClient 通用 HTTP 客户端
type HTTPClient struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

func NewHTTPClient(cfg HTTPClientConfig, logger *zap.Logger) *HTTPClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RateLimit)/60), 1)
	}

	restyClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
			limiterCtx, cancel := context.WithTimeout(r.Context(), cfg.Timeout)
			defer cancel()

			if err := limiter.Wait(limiterCtx); err != nil {
				logger.Warn("Rate limiter wait failed", zap.Error(err))
				return err
			}
			if cfg.UserAgent != "" {
				r.SetHeader("User-Agent", cfg.UserAgent)
			}
			if cfg.APIKey != "" {
				r.SetHeader("Authorization", "Bearer "+cfg.APIKey)
			}
			logger.Debug("Outgoing request", zap.String("url", r.URL))
			return nil
		}).
		AddResponseMiddleware(func(c *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() >= 400 {
				logger.Warn("HTTP request failed",
					zap.Int("status", resp.StatusCode()),
					zap.String("url", resp.Request.URL),
				)
			}
			return nil
		})

	return &HTTPClient{
		client:  restyClient,
		logger:  logger,
		limiter: limiter,
	}
}

// PostJSON 发送 JSON body, 响应解码到 out
func (c *HTTPClient) PostJSON(ctx context.Context, url string, body interface{}, headers map[string]string, out interface{}) error {
	req := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out)

	if headers != nil {
		req.SetHeaders(headers)
	}
	req.SetHeader("Content-Type", "application/json")

	resp, err := req.Post(url)
	if err != nil {
		c.logger.Debug("HTTP POST JSON request failed", zap.String("url", url), zap.Error(err))
		return err
	}

	if resp.StatusCode() >= 400 {
		return &HTTPError{Code: resp.StatusCode(), Message: resp.Status()}
	}

	return nil
}

// Close 释放底层连接
func (c *HTTPClient) Close() error {
	return c.client.Close()
}

// HTTPError 非 2xx 响应
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.Code, e.Message)
}
