// Package graphql is a small subgraph client: static documents, bound variables,
// {data, errors} decoding and an optional in-process response cache.
package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fund-dashboard/pkg/httpclient"
	"fund-dashboard/pkg/logger"

	"github.com/bytedance/sonic"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// FetchPolicy 控制响应缓存
type FetchPolicy string

const (
	NoCache    FetchPolicy = "no-cache"
	CacheFirst FetchPolicy = "cache-first"
)

const (
	defaultCacheTTL = 10 * time.Minute
)

// Request 一次 GraphQL 请求
type Request struct {
	OperationName string                 `json:"operationName,omitempty"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Error 是 errors 数组中的一项
type Error struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// ResponseError 响应带有 errors 时返回
type ResponseError struct {
	Operation string
	Errors    []Error
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return fmt.Sprintf("graphql %s: %s", e.Operation, strings.Join(msgs, "; "))
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

// Observer 接收每次请求的结果, 用于指标
type Observer func(operation string, cached bool, duration time.Duration, err error)

type Config struct {
	Endpoint    string
	FetchPolicy FetchPolicy
	CacheTTL    time.Duration
	HTTP        httpclient.HTTPClientConfig
}

// Client 单个 endpoint 的 GraphQL 客户端, 构造后只读, 可并发使用
type Client struct {
	endpoint string
	policy   FetchPolicy
	http     *httpclient.HTTPClient
	cache    *cache.Cache
	observer Observer
	tl       *zap.Logger
}

func NewClient(cfg Config, tl *zap.Logger) *Client {
	if cfg.FetchPolicy == "" {
		cfg.FetchPolicy = NoCache
	}
	c := &Client{
		endpoint: cfg.Endpoint,
		policy:   cfg.FetchPolicy,
		http:     httpclient.NewHTTPClient(cfg.HTTP, tl),
		tl:       tl.With(zap.String("endpoint", cfg.Endpoint)),
	}
	if cfg.FetchPolicy == CacheFirst {
		ttl := cfg.CacheTTL
		if ttl == 0 {
			ttl = defaultCacheTTL
		}
		c.cache = cache.New(ttl, time.Minute)
	}
	return c
}

// WithObserver 返回挂载了 observer 的客户端
func (c *Client) WithObserver(o Observer) *Client {
	cp := *c
	cp.observer = o
	return &cp
}

func (c *Client) Endpoint() string { return c.endpoint }

func (c *Client) Policy() FetchPolicy { return c.policy }

// Query 执行请求并把 data 解码进 out
func (c *Client) Query(ctx context.Context, req Request, out interface{}) (err error) {
	start := time.Now()
	ctx, span := logger.StartQuerySpan(ctx, c.endpoint, req.OperationName)
	cached := false
	defer func() {
		logger.EndSpan(span, err)
		if c.observer != nil {
			c.observer(req.OperationName, cached, time.Since(start), err)
		}
	}()

	var key string
	if c.cache != nil {
		key, err = cacheKey(req)
		if err != nil {
			return err
		}
		if raw, ok := c.cache.Get(key); ok {
			cached = true
			return decodeData(req.OperationName, raw.(json.RawMessage), out)
		}
	}

	var resp response
	if err = c.http.PostJSON(ctx, c.endpoint, req, nil, &resp); err != nil {
		logger.WithTrace(ctx, c.tl).Warn("subgraph request failed",
			zap.String("operation", req.OperationName), zap.Error(err))
		return fmt.Errorf("graphql %s: %w", req.OperationName, err)
	}
	if len(resp.Errors) > 0 {
		err = &ResponseError{Operation: req.OperationName, Errors: resp.Errors}
		logger.WithTrace(ctx, c.tl).Warn("subgraph returned errors",
			zap.String("operation", req.OperationName), zap.Error(err))
		return err
	}

	if err = decodeData(req.OperationName, resp.Data, out); err != nil {
		return err
	}
	if c.cache != nil {
		c.cache.SetDefault(key, resp.Data)
	}
	return nil
}

// Close 释放 HTTP 连接
func (c *Client) Close() error {
	return c.http.Close()
}

func decodeData(operation string, data json.RawMessage, out interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("graphql %s: empty data", operation)
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("graphql %s: decode data: %w", operation, err)
	}
	return nil
}

func cacheKey(req Request) (string, error) {
	vars, err := sonic.ConfigStd.Marshal(req.Variables)
	if err != nil {
		return "", fmt.Errorf("graphql %s: encode variables: %w", req.OperationName, err)
	}
	return req.OperationName + "|" + req.Query + "|" + string(vars), nil
}
