package model

// subgraph 原始返回结构, 数值字段均为字符串

type FundWire struct {
	ID                 string       `json:"id"`
	Address            string       `json:"address"`
	CreatedAtTimestamp RawDecimal   `json:"createdAtTimestamp"`
	UpdatedAtTimestamp RawDecimal   `json:"updatedAtTimestamp"`
	Manager            string       `json:"manager"`
	InvestorCount      RawDecimal   `json:"investorCount"`
	PrincipalETH       RawDecimal   `json:"principalETH"`
	PrincipalUSD       RawDecimal   `json:"principalUSD"`
	VolumeETH          RawDecimal   `json:"volumeETH"`
	VolumeUSD          RawDecimal   `json:"volumeUSD"`
	ProfitETH          RawDecimal   `json:"profitETH"`
	ProfitUSD          RawDecimal   `json:"profitUSD"`
	ProfitRatioETH     RawDecimal   `json:"profitRatioETH"`
	ProfitRatioUSD     RawDecimal   `json:"profitRatioUSD"`
	Tokens             []string     `json:"tokens"`
	TokensSymbols      []string     `json:"tokensSymbols"`
	TokensDecimals     []RawDecimal `json:"tokensDecimals"`
	TokensAmount       []RawDecimal `json:"tokensAmount"`
	TokensVolumeETH    []RawDecimal `json:"tokensVolumeETH"`
	TokensVolumeUSD    []RawDecimal `json:"tokensVolumeUSD"`
	FeeTokens          []string     `json:"feeTokens"`
	FeeSymbols         []string     `json:"feeSymbols"`
	FeeTokensAmount    []RawDecimal `json:"feeTokensAmount"`
}

// InvestorWire id 为 <FUND>-<INVESTOR>
type InvestorWire struct {
	ID                 string       `json:"id"`
	CreatedAtTimestamp RawDecimal   `json:"createdAtTimestamp"`
	UpdatedAtTimestamp RawDecimal   `json:"updatedAtTimestamp"`
	Fund               string       `json:"fund"`
	Manager            string       `json:"manager"`
	Investor           string       `json:"investor"`
	IsManager          RawDecimal   `json:"isManager"`
	PrincipalETH       RawDecimal   `json:"principalETH"`
	PrincipalUSD       RawDecimal   `json:"principalUSD"`
	VolumeETH          RawDecimal   `json:"volumeETH"`
	VolumeUSD          RawDecimal   `json:"volumeUSD"`
	LiquidityVolumeETH RawDecimal   `json:"liquidityVolumeETH"`
	LiquidityVolumeUSD RawDecimal   `json:"liquidityVolumeUSD"`
	ProfitETH          RawDecimal   `json:"profitETH"`
	ProfitUSD          RawDecimal   `json:"profitUSD"`
	ProfitRatioETH     RawDecimal   `json:"profitRatioETH"`
	ProfitRatioUSD     RawDecimal   `json:"profitRatioUSD"`
	Tokens             []string     `json:"tokens"`
	TokensSymbols      []string     `json:"tokensSymbols"`
	TokensDecimals     []RawDecimal `json:"tokensDecimals"`
	TokensAmount       []RawDecimal `json:"tokensAmount"`
	TokensVolumeETH    []RawDecimal `json:"tokensVolumeETH"`
	TokensVolumeUSD    []RawDecimal `json:"tokensVolumeUSD"`
}

// ManagerWire id 为 <FUND>-<MANAGER>
type ManagerWire struct {
	ID             string     `json:"id"`
	Fund           string     `json:"fund"`
	Manager        string     `json:"manager"`
	PrincipalETH   RawDecimal `json:"principalETH"`
	PrincipalUSD   RawDecimal `json:"principalUSD"`
	VolumeETH      RawDecimal `json:"volumeETH"`
	VolumeUSD      RawDecimal `json:"volumeUSD"`
	ProfitETH      RawDecimal `json:"profitETH"`
	ProfitUSD      RawDecimal `json:"profitUSD"`
	ProfitRatioETH RawDecimal `json:"profitRatioETH"`
	ProfitRatioUSD RawDecimal `json:"profitRatioUSD"`
	FeeVolumeETH   RawDecimal `json:"feeVolumeETH"`
	FeeVolumeUSD   RawDecimal `json:"feeVolumeUSD"`
}

type FundSnapshotWire struct {
	ID              string       `json:"id"`
	Timestamp       RawDecimal   `json:"timestamp"`
	Fund            string       `json:"fund"`
	Manager         string       `json:"manager"`
	InvestorCount   RawDecimal   `json:"investorCount"`
	PrincipalUSD    RawDecimal   `json:"principalUSD"`
	VolumeETH       RawDecimal   `json:"volumeETH"`
	VolumeUSD       RawDecimal   `json:"volumeUSD"`
	ProfitRatioUSD  RawDecimal   `json:"profitRatioUSD"`
	Tokens          []string     `json:"tokens"`
	TokensSymbols   []string     `json:"tokensSymbols"`
	TokensVolumeETH []RawDecimal `json:"tokensVolumeETH"`
	TokensVolumeUSD []RawDecimal `json:"tokensVolumeUSD"`
}

type InvestorSnapshotWire struct {
	ID                 string       `json:"id"`
	Timestamp          RawDecimal   `json:"timestamp"`
	Fund               string       `json:"fund"`
	Investor           string       `json:"investor"`
	PrincipalETH       RawDecimal   `json:"principalETH"`
	PrincipalUSD       RawDecimal   `json:"principalUSD"`
	VolumeETH          RawDecimal   `json:"volumeETH"`
	VolumeUSD          RawDecimal   `json:"volumeUSD"`
	LiquidityVolumeUSD RawDecimal   `json:"liquidityVolumeUSD"`
	ProfitETH          RawDecimal   `json:"profitETH"`
	ProfitUSD          RawDecimal   `json:"profitUSD"`
	ProfitRatioETH     RawDecimal   `json:"profitRatioETH"`
	ProfitRatioUSD     RawDecimal   `json:"profitRatioUSD"`
	Tokens             []string     `json:"tokens"`
	TokensSymbols      []string     `json:"tokensSymbols"`
	TokensVolumeUSD    []RawDecimal `json:"tokensVolumeUSD"`
}

type ManagerSnapshotWire struct {
	ID             string     `json:"id"`
	Timestamp      RawDecimal `json:"timestamp"`
	Fund           string     `json:"fund"`
	Manager        string     `json:"manager"`
	PrincipalUSD   RawDecimal `json:"principalUSD"`
	VolumeUSD      RawDecimal `json:"volumeUSD"`
	ProfitUSD      RawDecimal `json:"profitUSD"`
	ProfitRatioUSD RawDecimal `json:"profitRatioUSD"`
	FeeVolumeUSD   RawDecimal `json:"feeVolumeUSD"`
}

// InfoSnapshotWire factory 级别的日快照
type InfoSnapshotWire struct {
	ID              string     `json:"id"`
	Timestamp       RawDecimal `json:"timestamp"`
	FundCount       RawDecimal `json:"fundCount"`
	InvestorCount   RawDecimal `json:"investorCount"`
	TotalVolumeETH  RawDecimal `json:"totalVolumeETH"`
	TotalVolumeUSD  RawDecimal `json:"totalVolumeUSD"`
	WhitelistTokens []string   `json:"whitelistTokens"`
}

type FactoryWire struct {
	ID              string     `json:"id"`
	Owner           string     `json:"owner"`
	FundCount       RawDecimal `json:"fundCount"`
	InvestorCount   RawDecimal `json:"investorCount"`
	ManagerFee      RawDecimal `json:"managerFee"`
	TotalVolumeETH  RawDecimal `json:"totalVolumeETH"`
	TotalVolumeUSD  RawDecimal `json:"totalVolumeUSD"`
	WhitelistTokens []string   `json:"whitelistTokens"`
}

// TransactionWire 各类交易事件共用一个结构, type 为判别字段, 未选择的字段为空
type TransactionWire struct {
	ID        string     `json:"id"`
	Hash      string     `json:"transaction"`
	Timestamp RawDecimal `json:"timestamp"`
	Type      string     `json:"type"`
	Fund      string     `json:"fund"`
	Investor  string     `json:"investor"`

	// deposit / withdraw / fee
	Token     string     `json:"token"`
	Symbol    string     `json:"symbol"`
	Amount    RawDecimal `json:"amount"`
	AmountETH RawDecimal `json:"amountETH"`
	AmountUSD RawDecimal `json:"amountUSD"`

	// swap
	TokenIn        string     `json:"tokenIn"`
	TokenInSymbol  string     `json:"tokenInSymbol"`
	TokenOut       string     `json:"tokenOut"`
	TokenOutSymbol string     `json:"tokenOutSymbol"`
	AmountIn       RawDecimal `json:"amountIn"`
	AmountOut      RawDecimal `json:"amountOut"`

	// liquidity
	TokenID      RawDecimal `json:"tokenId"`
	Token0       string     `json:"token0"`
	Token1       string     `json:"token1"`
	Token0Symbol string     `json:"token0Symbol"`
	Token1Symbol string     `json:"token1Symbol"`
	Amount0      RawDecimal `json:"amount0"`
	Amount1      RawDecimal `json:"amount1"`
}

type TokenWire struct {
	ID               string     `json:"id"`
	Address          string     `json:"address"`
	Symbol           string     `json:"symbol"`
	Decimals         RawDecimal `json:"decimals"`
	UpdatedTimestamp RawDecimal `json:"updatedTimestamp"`
}

type BlockWire struct {
	ID        string     `json:"id"`
	Number    RawDecimal `json:"number"`
	Timestamp RawDecimal `json:"timestamp"`
}
