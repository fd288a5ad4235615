package evm_client

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

const dialTimeout = 5 * time.Second

// Init evm client, 连接失败直接 panic (启动阶段使用)
func Init(rawurl string) *ethclient.Client {
	client, err := Dial(context.Background(), rawurl)
	if err != nil {
		panic(err)
	}
	return client
}

// Dial 带超时连接 RPC endpoint
func Dial(ctx context.Context, rawurl string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("dial evm rpc %s: %w", rawurl, err)
	}
	return client, nil
}
