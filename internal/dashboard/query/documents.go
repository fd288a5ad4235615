// Package query holds the static subgraph documents. Values are never spliced into
// the document text; everything goes through the variables object.
package query

// Operation names, also used as metric labels
const (
	OpFund                  = "Fund"
	OpFundAtBlock           = "FundAtBlock"
	OpFunds                 = "Funds"
	OpManagingFunds         = "ManagingFunds"
	OpInvestingFunds        = "InvestingFunds"
	OpFundSnapshots         = "FundSnapshots"
	OpInvestor              = "Investor"
	OpFundInvestors         = "FundInvestors"
	OpInvestorSnapshots     = "InvestorSnapshots"
	OpManager               = "Manager"
	OpManagerSnapshots      = "ManagerSnapshots"
	OpFundTransactions      = "FundTransactions"
	OpInvestorTransactions  = "InvestorTransactions"
	OpSwapTransactions      = "SwapTransactions"
	OpLiquidityTransactions = "LiquidityTransactions"
	OpFeeTransactions       = "FeeTransactions"
	OpWhitelistTokens       = "WhitelistTokens"
	OpToken                 = "Token"
	OpInfoSnapshots         = "InfoSnapshots"
	OpFactory               = "Factory"
	OpBlockAt               = "BlockAt"
)

const fundFields = `
  id
  address
  createdAtTimestamp
  updatedAtTimestamp
  manager
  investorCount
  principalETH
  principalUSD
  volumeETH
  volumeUSD
  profitETH
  profitUSD
  profitRatioETH
  profitRatioUSD
  tokens
  tokensSymbols
  tokensDecimals
  tokensAmount
  tokensVolumeETH
  tokensVolumeUSD
  feeTokens
  feeSymbols
  feeTokensAmount
`

const investorFields = `
  id
  createdAtTimestamp
  updatedAtTimestamp
  fund
  manager
  investor
  isManager
  principalETH
  principalUSD
  volumeETH
  volumeUSD
  liquidityVolumeETH
  liquidityVolumeUSD
  profitETH
  profitUSD
  profitRatioETH
  profitRatioUSD
  tokens
  tokensSymbols
  tokensDecimals
  tokensAmount
  tokensVolumeETH
  tokensVolumeUSD
`

const managerFields = `
  id
  fund
  manager
  principalETH
  principalUSD
  volumeETH
  volumeUSD
  profitETH
  profitUSD
  profitRatioETH
  profitRatioUSD
  feeVolumeETH
  feeVolumeUSD
`

const Fund = `query Fund($fund: ID!) {
  fund(id: $fund) {` + fundFields + `}
}`

const FundAtBlock = `query FundAtBlock($fund: ID!, $block: Int!) {
  fund(id: $fund, block: { number: $block }) {` + fundFields + `}
}`

const Funds = `query Funds($first: Int!, $skip: Int!) {
  funds(first: $first, skip: $skip, orderBy: volumeUSD, orderDirection: desc) {` + fundFields + `}
}`

const ManagingFunds = `query ManagingFunds($manager: Bytes!) {
  funds(where: { manager: $manager }, orderBy: createdAtTimestamp, orderDirection: desc) {` + fundFields + `}
}`

const InvestingFunds = `query InvestingFunds($investor: Bytes!) {
  investors(where: { investor: $investor }, orderBy: createdAtTimestamp, orderDirection: desc) {` + investorFields + `}
}`

const FundSnapshots = `query FundSnapshots($fund: Bytes!, $first: Int!) {
  fundSnapshots(first: $first, where: { fund: $fund }, orderBy: timestamp, orderDirection: desc) {
    id
    timestamp
    fund
    manager
    investorCount
    principalUSD
    volumeETH
    volumeUSD
    profitRatioUSD
    tokens
    tokensSymbols
    tokensVolumeETH
    tokensVolumeUSD
  }
}`

const Investor = `query Investor($id: ID!) {
  investor(id: $id) {` + investorFields + `}
}`

const FundInvestors = `query FundInvestors($fund: Bytes!, $first: Int!, $skip: Int!) {
  investors(first: $first, skip: $skip, where: { fund: $fund }, orderBy: principalUSD, orderDirection: desc) {` + investorFields + `}
}`

const InvestorSnapshots = `query InvestorSnapshots($fund: Bytes!, $investor: Bytes!, $first: Int!) {
  investorSnapshots(first: $first, where: { fund: $fund, investor: $investor }, orderBy: timestamp, orderDirection: desc) {
    id
    timestamp
    fund
    investor
    principalETH
    principalUSD
    volumeETH
    volumeUSD
    liquidityVolumeUSD
    profitETH
    profitUSD
    profitRatioETH
    profitRatioUSD
    tokens
    tokensSymbols
    tokensVolumeUSD
  }
}`

const Manager = `query Manager($id: ID!) {
  manager(id: $id) {` + managerFields + `}
}`

const ManagerSnapshots = `query ManagerSnapshots($fund: Bytes!, $manager: Bytes!, $first: Int!) {
  managerSnapshots(first: $first, where: { fund: $fund, manager: $manager }, orderBy: timestamp, orderDirection: desc) {
    id
    timestamp
    fund
    manager
    principalUSD
    volumeUSD
    profitUSD
    profitRatioUSD
    feeVolumeUSD
  }
}`

const FundTransactions = `query FundTransactions($fund: Bytes!, $first: Int!) {
  transactions(first: $first, where: { fund: $fund }, orderBy: timestamp, orderDirection: desc) {
    id
    transaction
    timestamp
    type
    fund
    investor
    token
    symbol
    amount
    amountETH
    amountUSD
  }
}`

const InvestorTransactions = `query InvestorTransactions($fund: Bytes!, $investor: Bytes!, $first: Int!) {
  transactions(first: $first, where: { fund: $fund, investor: $investor }, orderBy: timestamp, orderDirection: desc) {
    id
    transaction
    timestamp
    type
    fund
    investor
    token
    symbol
    amount
    amountETH
    amountUSD
  }
}`

const SwapTransactions = `query SwapTransactions($fund: Bytes!, $investor: Bytes!, $first: Int!) {
  swaps(first: $first, where: { fund: $fund, investor: $investor }, orderBy: timestamp, orderDirection: desc) {
    id
    transaction
    timestamp
    fund
    investor
    tokenIn
    tokenInSymbol
    tokenOut
    tokenOutSymbol
    amountIn
    amountOut
    amountETH
    amountUSD
  }
}`

const LiquidityTransactions = `query LiquidityTransactions($fund: Bytes!, $investor: Bytes!, $first: Int!) {
  liquidityTransactions(first: $first, where: { fund: $fund, investor: $investor }, orderBy: timestamp, orderDirection: desc) {
    id
    transaction
    timestamp
    type
    fund
    investor
    tokenId
    token0
    token1
    token0Symbol
    token1Symbol
    amount0
    amount1
    amountETH
    amountUSD
  }
}`

const FeeTransactions = `query FeeTransactions($fund: Bytes!, $first: Int!) {
  feeTransactions(first: $first, where: { fund: $fund }, orderBy: timestamp, orderDirection: desc) {
    id
    transaction
    timestamp
    type
    fund
    investor
    token
    symbol
    amount
    amountETH
    amountUSD
  }
}`

const WhitelistTokens = `query WhitelistTokens {
  whitelistTokens(orderBy: symbol, orderDirection: asc) {
    id
    address
    symbol
    decimals
    updatedTimestamp
  }
}`

const Token = `query Token($token: ID!) {
  token(id: $token) {
    id
    address
    symbol
    decimals
    updatedTimestamp
  }
}`

const InfoSnapshots = `query InfoSnapshots($first: Int!) {
  infoSnapshots(first: $first, orderBy: timestamp, orderDirection: desc) {
    id
    timestamp
    fundCount
    investorCount
    totalVolumeETH
    totalVolumeUSD
    whitelistTokens
  }
}`

const Factory = `query Factory($factory: ID!) {
  factory(id: $factory) {
    id
    owner
    fundCount
    investorCount
    managerFee
    totalVolumeETH
    totalVolumeUSD
    whitelistTokens
  }
}`

// BlockAt 取时间窗口 (from, to) 内的第一个块, 走 block 子图
const BlockAt = `query BlockAt($timestampFrom: BigInt!, $timestampTo: BigInt!) {
  blocks(first: 1, orderBy: timestamp, orderDirection: asc, where: { timestamp_gt: $timestampFrom, timestamp_lt: $timestampTo }) {
    id
    number
    timestamp
  }
}`
