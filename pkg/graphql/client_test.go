package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fund-dashboard/pkg/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSubgraph struct {
	hits    atomic.Int32
	last    atomic.Value // Request
	status  int
	respond func(req Request) string
}

func (f *fakeSubgraph) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	var req Request
	_ = json.NewDecoder(r.Body).Decode(&req)
	f.last.Store(req)

	w.Header().Set("Content-Type", "application/json")
	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{}`))
		return
	}
	_, _ = w.Write([]byte(f.respond(req)))
}

func newTestClient(t *testing.T, policy FetchPolicy, f *fakeSubgraph) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		Endpoint:    srv.URL,
		FetchPolicy: policy,
		CacheTTL:    time.Minute,
		HTTP:        httpclient.HTTPClientConfig{Timeout: 5 * time.Second},
	}, zap.NewNop())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

const tokenDoc = `query Token($token: Bytes!) { token(id: $token) { id symbol } }`

func tokenRequest(addr string) Request {
	return Request{
		OperationName: "Token",
		Query:         tokenDoc,
		Variables:     map[string]interface{}{"token": addr},
	}
}

func okToken(req Request) string {
	return `{"data":{"token":{"id":"` + req.Variables["token"].(string) + `","symbol":"WETH"}}}`
}

type tokenPayload struct {
	Token struct {
		ID     string `json:"id"`
		Symbol string `json:"symbol"`
	} `json:"token"`
}

func TestQuery_DecodesDataAndSendsVariables(t *testing.T) {
	f := &fakeSubgraph{respond: okToken}
	c := newTestClient(t, NoCache, f)

	var out tokenPayload
	require.NoError(t, c.Query(context.Background(), tokenRequest("0xabc"), &out))
	assert.Equal(t, "0xabc", out.Token.ID)
	assert.Equal(t, "WETH", out.Token.Symbol)

	sent := f.last.Load().(Request)
	assert.Equal(t, "Token", sent.OperationName)
	assert.Equal(t, tokenDoc, sent.Query)
	assert.Equal(t, "0xabc", sent.Variables["token"])
}

func TestQuery_FetchPolicy(t *testing.T) {
	t.Run("no-cache hits the network every call", func(t *testing.T) {
		f := &fakeSubgraph{respond: okToken}
		c := newTestClient(t, NoCache, f)
		for i := 0; i < 3; i++ {
			var out tokenPayload
			require.NoError(t, c.Query(context.Background(), tokenRequest("0xabc"), &out))
		}
		assert.Equal(t, int32(3), f.hits.Load())
	})

	t.Run("cache-first reuses identical requests", func(t *testing.T) {
		f := &fakeSubgraph{respond: okToken}
		c := newTestClient(t, CacheFirst, f)
		for i := 0; i < 3; i++ {
			var out tokenPayload
			require.NoError(t, c.Query(context.Background(), tokenRequest("0xabc"), &out))
			assert.Equal(t, "0xabc", out.Token.ID)
		}
		assert.Equal(t, int32(1), f.hits.Load())

		var out tokenPayload
		require.NoError(t, c.Query(context.Background(), tokenRequest("0xdef"), &out))
		assert.Equal(t, "0xdef", out.Token.ID)
		assert.Equal(t, int32(2), f.hits.Load(), "different variables are a different cache entry")
	})

	t.Run("errors are not cached", func(t *testing.T) {
		f := &fakeSubgraph{respond: func(Request) string {
			return `{"data":null,"errors":[{"message":"indexing error"}]}`
		}}
		c := newTestClient(t, CacheFirst, f)
		var out tokenPayload
		require.Error(t, c.Query(context.Background(), tokenRequest("0xabc"), &out))
		require.Error(t, c.Query(context.Background(), tokenRequest("0xabc"), &out))
		assert.Equal(t, int32(2), f.hits.Load())
	})
}

func TestQuery_Errors(t *testing.T) {
	t.Run("graphql errors", func(t *testing.T) {
		f := &fakeSubgraph{respond: func(Request) string {
			return `{"errors":[{"message":"bad id"},{"message":"second"}]}`
		}}
		c := newTestClient(t, NoCache, f)

		var out tokenPayload
		err := c.Query(context.Background(), tokenRequest("0xabc"), &out)
		var gqlErr *ResponseError
		require.ErrorAs(t, err, &gqlErr)
		assert.Equal(t, "Token", gqlErr.Operation)
		assert.Len(t, gqlErr.Errors, 2)
		assert.Contains(t, err.Error(), "bad id; second")
	})

	t.Run("http status", func(t *testing.T) {
		f := &fakeSubgraph{status: http.StatusBadGateway}
		c := newTestClient(t, NoCache, f)

		var out tokenPayload
		err := c.Query(context.Background(), tokenRequest("0xabc"), &out)
		var httpErr *httpclient.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	})

	t.Run("null data", func(t *testing.T) {
		f := &fakeSubgraph{respond: func(Request) string { return `{"data":null}` }}
		c := newTestClient(t, NoCache, f)

		var out tokenPayload
		require.Error(t, c.Query(context.Background(), tokenRequest("0xabc"), &out))
	})

	t.Run("cancelled context", func(t *testing.T) {
		f := &fakeSubgraph{respond: okToken}
		c := newTestClient(t, NoCache, f)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out tokenPayload
		require.Error(t, c.Query(ctx, tokenRequest("0xabc"), &out))
	})
}

func TestQuery_Observer(t *testing.T) {
	f := &fakeSubgraph{respond: okToken}
	type call struct {
		op     string
		cached bool
		err    error
	}
	var calls []call
	c := newTestClient(t, CacheFirst, f).WithObserver(func(op string, cached bool, _ time.Duration, err error) {
		calls = append(calls, call{op, cached, err})
	})

	var out tokenPayload
	require.NoError(t, c.Query(context.Background(), tokenRequest("0xabc"), &out))
	require.NoError(t, c.Query(context.Background(), tokenRequest("0xabc"), &out))

	require.Len(t, calls, 2)
	assert.Equal(t, call{"Token", false, nil}, calls[0])
	assert.Equal(t, call{"Token", true, nil}, calls[1])
	assert.Equal(t, CacheFirst, c.Policy())
}
