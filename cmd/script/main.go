package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"fund-dashboard/internal/dashboard/calldata"
	"fund-dashboard/internal/dashboard/config"
	"fund-dashboard/internal/dashboard/data"
	"fund-dashboard/internal/dashboard/repository"
	"fund-dashboard/internal/dashboard/result"
	"fund-dashboard/pkg/logger"
	"fund-dashboard/pkg/utils"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// 一次性查询 / calldata 生成, 结果以 JSON 打印到 stdout
//
//	script [flags] <command>
//	script -fund 0x.. fund
//	script -amount 1.5 -decimals 18 stake

var (
	dirFlag      = flag.String("config", config.DefaultDir, "config directory")
	fundFlag     = flag.String("fund", "", "fund address")
	investorFlag = flag.String("investor", "", "investor address")
	managerFlag  = flag.String("manager", "", "manager address")
	tokenFlag    = flag.String("token", "", "token address")
	spenderFlag  = flag.String("spender", "", "spender address for approve")
	factoryFlag  = flag.String("factory", "", "factory address, defaults to contracts.factory")
	firstFlag    = flag.Int("first", 0, "page size")
	skipFlag     = flag.Int("skip", 0, "page offset")
	blockFlag    = flag.Int64("block", 0, "block number")
	tsFlag       = flag.Int64("ts", 0, "unix timestamp in seconds")
	amountFlag   = flag.String("amount", "0", "human readable amount")
	decimalsFlag = flag.Uint("decimals", 18, "token decimals for -amount")
	payETHFlag   = flag.Bool("eth", false, "pay deposit with native ETH when token is WETH")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: script [flags] <command>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	cmd := flag.Arg(0)

	cfg, err := config.Load(*dirFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger.InitTrace("fund-dashboard", "script")
	ctx, span := logger.StartSpan(context.Background(), "main", cmd)
	defer span.End()

	rootLogger := logger.NewLoggerWithDir("script", cfg.Log.Dir)
	logger.SetLogLevel(cfg.Log.Level)
	tl := logger.WithTrace(ctx, rootLogger)
	defer func() { _ = rootLogger.Sync() }()

	startTime := time.Now()
	out, err := runCalldata(cmd, cfg)
	if errors.Is(err, errUnknownCommand) {
		out, err = runQuery(ctx, cmd, cfg, tl)
	}
	if err != nil {
		tl.Error("command failed", zap.String("command", cmd), zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	b, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(b))
	tl.Info("Task completed successfully", zap.String("command", cmd), zap.Duration("taken_time", time.Since(startTime)))
}

var errUnknownCommand = errors.New("unknown command")

func runQuery(ctx context.Context, cmd string, cfg config.Config, tl *zap.Logger) (interface{}, error) {
	repo, err := repository.New(ctx, cfg, tl)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	c := data.NewClient(repo, data.Options{SkipUnsetQueries: cfg.Subgraph.SkipUnsetQueries}, tl)
	page := data.Page{First: *firstFlag, Skip: *skipFlag}
	factory := *factoryFlag
	if factory == "" {
		factory = cfg.Contracts.Factory
	}

	switch cmd {
	case "fund":
		if *blockFlag > 0 {
			return result.ToEnvelope(c.FundAtBlock(ctx, *fundFlag, *blockFlag)), nil
		}
		return result.ToEnvelope(c.Fund(ctx, *fundFlag)), nil
	case "funds":
		return result.ToListEnvelope(c.Funds(ctx, page)), nil
	case "managing-funds":
		return result.ToListEnvelope(c.ManagingFunds(ctx, *managerFlag)), nil
	case "investing-funds":
		return result.ToListEnvelope(c.InvestingFunds(ctx, *investorFlag)), nil
	case "fund-snapshots":
		return result.ToListEnvelope(c.FundSnapshots(ctx, *fundFlag, *firstFlag)), nil
	case "investor":
		return result.ToEnvelope(c.Investor(ctx, *fundFlag, *investorFlag)), nil
	case "fund-investors":
		return result.ToListEnvelope(c.FundInvestors(ctx, *fundFlag, page)), nil
	case "investor-snapshots":
		return result.ToListEnvelope(c.InvestorSnapshots(ctx, *fundFlag, *investorFlag, *firstFlag)), nil
	case "manager":
		return result.ToEnvelope(c.Manager(ctx, *fundFlag, *managerFlag)), nil
	case "manager-snapshots":
		return result.ToListEnvelope(c.ManagerSnapshots(ctx, *fundFlag, *managerFlag, *firstFlag)), nil
	case "fund-transactions":
		return result.ToListEnvelope(c.FundTransactions(ctx, *fundFlag, *firstFlag)), nil
	case "investor-history":
		return result.ToListEnvelope(c.InvestorHistory(ctx, *fundFlag, *investorFlag, *firstFlag)), nil
	case "fee-transactions":
		return result.ToListEnvelope(c.FeeTransactions(ctx, *fundFlag, *firstFlag)), nil
	case "whitelist-tokens":
		return result.ToListEnvelope(c.WhitelistTokens(ctx)), nil
	case "token":
		return result.ToEnvelope(c.Token(ctx, *tokenFlag)), nil
	case "info-snapshots":
		return result.ToListEnvelope(c.InfoSnapshots(ctx, *firstFlag)), nil
	case "factory":
		return result.ToEnvelope(c.Factory(ctx, factory)), nil
	case "block":
		return result.ToEnvelope(c.BlockNumberAt(ctx, *tsFlag)), nil
	case "overview":
		return result.ToEnvelope(c.FundOverview(ctx, *fundFlag)), nil
	case "holdings":
		return result.ToEnvelope(c.FundHoldings(ctx, *fundFlag)), nil
	}
	return nil, fmt.Errorf("%w: %s", errUnknownCommand, cmd)
}

func runCalldata(cmd string, cfg config.Config) (interface{}, error) {
	amount := func() (*big.Int, error) {
		return utils.ParseUnits(*amountFlag, uint8(*decimalsFlag))
	}
	withAmount := func(fn func(*big.Int) (calldata.MethodParameters, error)) (interface{}, error) {
		a, err := amount()
		if err != nil {
			return nil, err
		}
		return fn(a)
	}

	switch cmd {
	case "create-fund":
		return calldata.CreateFundCallParameters()
	case "subscribe":
		return calldata.SubscribeCallParameters(*fundFlag)
	case "deposit":
		native := calldata.IsNativeDeposit(*tokenFlag, cfg.Contracts.WETH, *payETHFlag)
		return withAmount(func(a *big.Int) (calldata.MethodParameters, error) {
			return calldata.DepositCallParameters(*fundFlag, *tokenFlag, a, native)
		})
	case "withdraw":
		return withAmount(func(a *big.Int) (calldata.MethodParameters, error) {
			return calldata.WithdrawCallParameters(*fundFlag, *tokenFlag, a)
		})
	case "withdraw-fee":
		return withAmount(func(a *big.Int) (calldata.MethodParameters, error) {
			return calldata.WithdrawFeeCallParameters(*fundFlag, *tokenFlag, a)
		})
	case "stake":
		return withAmount(calldata.StakeCallParameters)
	case "unstake":
		return withAmount(calldata.UnstakeCallParameters)
	case "claim-reward":
		return calldata.ClaimRewardCallParameters()
	case "approve":
		return withAmount(func(a *big.Int) (calldata.MethodParameters, error) {
			return calldata.ApproveCallParameters(*spenderFlag, a)
		})
	}
	return nil, errUnknownCommand
}
