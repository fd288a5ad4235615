package model

// 展示层结构, 由 Normalize* 从 wire 结构生成

type Fund struct {
	Address            string    `json:"address"`
	CreatedAtTimestamp int64     `json:"createdAtTimestamp"`
	UpdatedAtTimestamp int64     `json:"updatedAtTimestamp"`
	Manager            string    `json:"manager"`
	InvestorCount      int64     `json:"investorCount"`
	PrincipalETH       float64   `json:"principalETH"`
	PrincipalUSD       float64   `json:"principalUSD"`
	VolumeETH          float64   `json:"volumeETH"`
	VolumeUSD          float64   `json:"volumeUSD"`
	ProfitETH          float64   `json:"profitETH"`
	ProfitUSD          float64   `json:"profitUSD"`
	ProfitRatioETH     float64   `json:"profitRatioETH"`
	ProfitRatioUSD     float64   `json:"profitRatioUSD"`
	Tokens             []string  `json:"tokens"`
	TokensSymbols      []string  `json:"tokensSymbols"`
	TokensDecimals     []int64   `json:"tokensDecimals"`
	TokensAmount       []float64 `json:"tokensAmount"`
	TokensVolumeETH    []float64 `json:"tokensVolumeETH"`
	TokensVolumeUSD    []float64 `json:"tokensVolumeUSD"`
	FeeTokens          []string  `json:"feeTokens"`
	FeeSymbols         []string  `json:"feeSymbols"`
	FeeTokensAmount    []float64 `json:"feeTokensAmount"`
}

type Investor struct {
	ID                 string    `json:"id"`
	CreatedAtTimestamp int64     `json:"createdAtTimestamp"`
	UpdatedAtTimestamp int64     `json:"updatedAtTimestamp"`
	Fund               string    `json:"fund"`
	Manager            string    `json:"manager"`
	Investor           string    `json:"investor"`
	IsManager          bool      `json:"isManager"`
	PrincipalETH       float64   `json:"principalETH"`
	PrincipalUSD       float64   `json:"principalUSD"`
	VolumeETH          float64   `json:"volumeETH"`
	VolumeUSD          float64   `json:"volumeUSD"`
	LiquidityVolumeETH float64   `json:"liquidityVolumeETH"`
	LiquidityVolumeUSD float64   `json:"liquidityVolumeUSD"`
	ProfitETH          float64   `json:"profitETH"`
	ProfitUSD          float64   `json:"profitUSD"`
	ProfitRatioETH     float64   `json:"profitRatioETH"`
	ProfitRatioUSD     float64   `json:"profitRatioUSD"`
	Tokens             []string  `json:"tokens"`
	TokensSymbols      []string  `json:"tokensSymbols"`
	TokensDecimals     []int64   `json:"tokensDecimals"`
	TokensAmount       []float64 `json:"tokensAmount"`
	TokensVolumeETH    []float64 `json:"tokensVolumeETH"`
	TokensVolumeUSD    []float64 `json:"tokensVolumeUSD"`
}

type Manager struct {
	ID             string  `json:"id"`
	Fund           string  `json:"fund"`
	Manager        string  `json:"manager"`
	PrincipalETH   float64 `json:"principalETH"`
	PrincipalUSD   float64 `json:"principalUSD"`
	VolumeETH      float64 `json:"volumeETH"`
	VolumeUSD      float64 `json:"volumeUSD"`
	ProfitETH      float64 `json:"profitETH"`
	ProfitUSD      float64 `json:"profitUSD"`
	ProfitRatioETH float64 `json:"profitRatioETH"`
	ProfitRatioUSD float64 `json:"profitRatioUSD"`
	FeeVolumeETH   float64 `json:"feeVolumeETH"`
	FeeVolumeUSD   float64 `json:"feeVolumeUSD"`
}

type FundSnapshot struct {
	Timestamp       int64     `json:"timestamp"`
	Fund            string    `json:"fund"`
	Manager         string    `json:"manager"`
	InvestorCount   int64     `json:"investorCount"`
	PrincipalUSD    float64   `json:"principalUSD"`
	VolumeETH       float64   `json:"volumeETH"`
	VolumeUSD       float64   `json:"volumeUSD"`
	ProfitRatioUSD  float64   `json:"profitRatioUSD"`
	Tokens          []string  `json:"tokens"`
	TokensSymbols   []string  `json:"tokensSymbols"`
	TokensVolumeETH []float64 `json:"tokensVolumeETH"`
	TokensVolumeUSD []float64 `json:"tokensVolumeUSD"`
}

type InvestorSnapshot struct {
	Timestamp          int64     `json:"timestamp"`
	Fund               string    `json:"fund"`
	Investor           string    `json:"investor"`
	PrincipalETH       float64   `json:"principalETH"`
	PrincipalUSD       float64   `json:"principalUSD"`
	VolumeETH          float64   `json:"volumeETH"`
	VolumeUSD          float64   `json:"volumeUSD"`
	LiquidityVolumeUSD float64   `json:"liquidityVolumeUSD"`
	ProfitETH          float64   `json:"profitETH"`
	ProfitUSD          float64   `json:"profitUSD"`
	ProfitRatioETH     float64   `json:"profitRatioETH"`
	ProfitRatioUSD     float64   `json:"profitRatioUSD"`
	Tokens             []string  `json:"tokens"`
	TokensSymbols      []string  `json:"tokensSymbols"`
	TokensVolumeUSD    []float64 `json:"tokensVolumeUSD"`
}

type ManagerSnapshot struct {
	Timestamp      int64   `json:"timestamp"`
	Fund           string  `json:"fund"`
	Manager        string  `json:"manager"`
	PrincipalUSD   float64 `json:"principalUSD"`
	VolumeUSD      float64 `json:"volumeUSD"`
	ProfitUSD      float64 `json:"profitUSD"`
	ProfitRatioUSD float64 `json:"profitRatioUSD"`
	FeeVolumeUSD   float64 `json:"feeVolumeUSD"`
}

type InfoSnapshot struct {
	Timestamp       int64    `json:"timestamp"`
	FundCount       int64    `json:"fundCount"`
	InvestorCount   int64    `json:"investorCount"`
	TotalVolumeETH  float64  `json:"totalVolumeETH"`
	TotalVolumeUSD  float64  `json:"totalVolumeUSD"`
	WhitelistTokens []string `json:"whitelistTokens"`
}

type Factory struct {
	Owner           string   `json:"owner"`
	FundCount       int64    `json:"fundCount"`
	InvestorCount   int64    `json:"investorCount"`
	ManagerFee      float64  `json:"managerFee"`
	TotalVolumeETH  float64  `json:"totalVolumeETH"`
	TotalVolumeUSD  float64  `json:"totalVolumeUSD"`
	WhitelistTokens []string `json:"whitelistTokens"`
}

// TxType 交易事件类型
type TxType string

const (
	TxDeposit            TxType = "Deposit"
	TxWithdraw           TxType = "Withdraw"
	TxSwap               TxType = "Swap"
	TxMintNewPosition    TxType = "MintNewPosition"
	TxIncreaseLiquidity  TxType = "IncreaseLiquidity"
	TxCollectPositionFee TxType = "CollectPositionFee"
	TxDecreaseLiquidity  TxType = "DecreaseLiquidity"
	TxWithdrawFee        TxType = "WithdrawFee"
	TxUnknown            TxType = "Unknown"
)

func ParseTxType(s string) TxType {
	switch t := TxType(s); t {
	case TxDeposit, TxWithdraw, TxSwap, TxMintNewPosition, TxIncreaseLiquidity,
		TxCollectPositionFee, TxDecreaseLiquidity, TxWithdrawFee:
		return t
	}
	return TxUnknown
}

func (t TxType) IsLiquidity() bool {
	switch t {
	case TxMintNewPosition, TxIncreaseLiquidity, TxCollectPositionFee, TxDecreaseLiquidity:
		return true
	}
	return false
}

type Transaction struct {
	ID        string `json:"id"`
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
	Type      TxType `json:"type"`
	Fund      string `json:"fund"`
	Investor  string `json:"investor"`

	Token     string  `json:"token,omitempty"`
	Symbol    string  `json:"symbol,omitempty"`
	Amount    float64 `json:"amount"`
	AmountETH float64 `json:"amountETH"`
	AmountUSD float64 `json:"amountUSD"`

	TokenIn        string  `json:"tokenIn,omitempty"`
	TokenInSymbol  string  `json:"tokenInSymbol,omitempty"`
	TokenOut       string  `json:"tokenOut,omitempty"`
	TokenOutSymbol string  `json:"tokenOutSymbol,omitempty"`
	AmountIn       float64 `json:"amountIn"`
	AmountOut      float64 `json:"amountOut"`

	TokenID      string  `json:"tokenId"` // uint256, 十进制字符串
	Token0       string  `json:"token0,omitempty"`
	Token1       string  `json:"token1,omitempty"`
	Token0Symbol string  `json:"token0Symbol,omitempty"`
	Token1Symbol string  `json:"token1Symbol,omitempty"`
	Amount0      float64 `json:"amount0"`
	Amount1      float64 `json:"amount1"`
}

type Token struct {
	Address          string `json:"address"`
	Symbol           string `json:"symbol"`
	Decimals         int64  `json:"decimals"`
	UpdatedTimestamp int64  `json:"updatedTimestamp"`
}

type Block struct {
	Number    int64 `json:"number"`
	Timestamp int64 `json:"timestamp"`
}
