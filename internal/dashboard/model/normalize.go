package model

// Normalize* 纯函数: wire -> view, 逐字段解析, 不做任何业务计算

func NormalizeFund(w FundWire) Fund {
	address := w.Address
	if address == "" {
		address = w.ID
	}
	return Fund{
		Address:            address,
		CreatedAtTimestamp: w.CreatedAtTimestamp.Int(),
		UpdatedAtTimestamp: w.UpdatedAtTimestamp.Int(),
		Manager:            w.Manager,
		InvestorCount:      w.InvestorCount.Int(),
		PrincipalETH:       w.PrincipalETH.Float(),
		PrincipalUSD:       w.PrincipalUSD.Float(),
		VolumeETH:          w.VolumeETH.Float(),
		VolumeUSD:          w.VolumeUSD.Float(),
		ProfitETH:          w.ProfitETH.Float(),
		ProfitUSD:          w.ProfitUSD.Float(),
		ProfitRatioETH:     w.ProfitRatioETH.Float(),
		ProfitRatioUSD:     w.ProfitRatioUSD.Float(),
		Tokens:             strs(w.Tokens),
		TokensSymbols:      strs(w.TokensSymbols),
		TokensDecimals:     Ints(w.TokensDecimals),
		TokensAmount:       Floats(w.TokensAmount),
		TokensVolumeETH:    Floats(w.TokensVolumeETH),
		TokensVolumeUSD:    Floats(w.TokensVolumeUSD),
		FeeTokens:          strs(w.FeeTokens),
		FeeSymbols:         strs(w.FeeSymbols),
		FeeTokensAmount:    Floats(w.FeeTokensAmount),
	}
}

func NormalizeInvestor(w InvestorWire) Investor {
	return Investor{
		ID:                 w.ID,
		CreatedAtTimestamp: w.CreatedAtTimestamp.Int(),
		UpdatedAtTimestamp: w.UpdatedAtTimestamp.Int(),
		Fund:               w.Fund,
		Manager:            w.Manager,
		Investor:           w.Investor,
		IsManager:          w.IsManager.Bool(),
		PrincipalETH:       w.PrincipalETH.Float(),
		PrincipalUSD:       w.PrincipalUSD.Float(),
		VolumeETH:          w.VolumeETH.Float(),
		VolumeUSD:          w.VolumeUSD.Float(),
		LiquidityVolumeETH: w.LiquidityVolumeETH.Float(),
		LiquidityVolumeUSD: w.LiquidityVolumeUSD.Float(),
		ProfitETH:          w.ProfitETH.Float(),
		ProfitUSD:          w.ProfitUSD.Float(),
		ProfitRatioETH:     w.ProfitRatioETH.Float(),
		ProfitRatioUSD:     w.ProfitRatioUSD.Float(),
		Tokens:             strs(w.Tokens),
		TokensSymbols:      strs(w.TokensSymbols),
		TokensDecimals:     Ints(w.TokensDecimals),
		TokensAmount:       Floats(w.TokensAmount),
		TokensVolumeETH:    Floats(w.TokensVolumeETH),
		TokensVolumeUSD:    Floats(w.TokensVolumeUSD),
	}
}

func NormalizeManager(w ManagerWire) Manager {
	return Manager{
		ID:             w.ID,
		Fund:           w.Fund,
		Manager:        w.Manager,
		PrincipalETH:   w.PrincipalETH.Float(),
		PrincipalUSD:   w.PrincipalUSD.Float(),
		VolumeETH:      w.VolumeETH.Float(),
		VolumeUSD:      w.VolumeUSD.Float(),
		ProfitETH:      w.ProfitETH.Float(),
		ProfitUSD:      w.ProfitUSD.Float(),
		ProfitRatioETH: w.ProfitRatioETH.Float(),
		ProfitRatioUSD: w.ProfitRatioUSD.Float(),
		FeeVolumeETH:   w.FeeVolumeETH.Float(),
		FeeVolumeUSD:   w.FeeVolumeUSD.Float(),
	}
}

func NormalizeFundSnapshot(w FundSnapshotWire) FundSnapshot {
	return FundSnapshot{
		Timestamp:       w.Timestamp.Int(),
		Fund:            w.Fund,
		Manager:         w.Manager,
		InvestorCount:   w.InvestorCount.Int(),
		PrincipalUSD:    w.PrincipalUSD.Float(),
		VolumeETH:       w.VolumeETH.Float(),
		VolumeUSD:       w.VolumeUSD.Float(),
		ProfitRatioUSD:  w.ProfitRatioUSD.Float(),
		Tokens:          strs(w.Tokens),
		TokensSymbols:   strs(w.TokensSymbols),
		TokensVolumeETH: Floats(w.TokensVolumeETH),
		TokensVolumeUSD: Floats(w.TokensVolumeUSD),
	}
}

func NormalizeInvestorSnapshot(w InvestorSnapshotWire) InvestorSnapshot {
	return InvestorSnapshot{
		Timestamp:          w.Timestamp.Int(),
		Fund:               w.Fund,
		Investor:           w.Investor,
		PrincipalETH:       w.PrincipalETH.Float(),
		PrincipalUSD:       w.PrincipalUSD.Float(),
		VolumeETH:          w.VolumeETH.Float(),
		VolumeUSD:          w.VolumeUSD.Float(),
		LiquidityVolumeUSD: w.LiquidityVolumeUSD.Float(),
		ProfitETH:          w.ProfitETH.Float(),
		ProfitUSD:          w.ProfitUSD.Float(),
		ProfitRatioETH:     w.ProfitRatioETH.Float(),
		ProfitRatioUSD:     w.ProfitRatioUSD.Float(),
		Tokens:             strs(w.Tokens),
		TokensSymbols:      strs(w.TokensSymbols),
		TokensVolumeUSD:    Floats(w.TokensVolumeUSD),
	}
}

func NormalizeManagerSnapshot(w ManagerSnapshotWire) ManagerSnapshot {
	return ManagerSnapshot{
		Timestamp:      w.Timestamp.Int(),
		Fund:           w.Fund,
		Manager:        w.Manager,
		PrincipalUSD:   w.PrincipalUSD.Float(),
		VolumeUSD:      w.VolumeUSD.Float(),
		ProfitUSD:      w.ProfitUSD.Float(),
		ProfitRatioUSD: w.ProfitRatioUSD.Float(),
		FeeVolumeUSD:   w.FeeVolumeUSD.Float(),
	}
}

func NormalizeInfoSnapshot(w InfoSnapshotWire) InfoSnapshot {
	return InfoSnapshot{
		Timestamp:       w.Timestamp.Int(),
		FundCount:       w.FundCount.Int(),
		InvestorCount:   w.InvestorCount.Int(),
		TotalVolumeETH:  w.TotalVolumeETH.Float(),
		TotalVolumeUSD:  w.TotalVolumeUSD.Float(),
		WhitelistTokens: strs(w.WhitelistTokens),
	}
}

func NormalizeFactory(w FactoryWire) Factory {
	return Factory{
		Owner:           w.Owner,
		FundCount:       w.FundCount.Int(),
		InvestorCount:   w.InvestorCount.Int(),
		ManagerFee:      w.ManagerFee.Float(),
		TotalVolumeETH:  w.TotalVolumeETH.Float(),
		TotalVolumeUSD:  w.TotalVolumeUSD.Float(),
		WhitelistTokens: strs(w.WhitelistTokens),
	}
}

func NormalizeTransaction(w TransactionWire) Transaction {
	return Transaction{
		ID:             w.ID,
		Hash:           w.Hash,
		Timestamp:      w.Timestamp.Int(),
		Type:           ParseTxType(w.Type),
		Fund:           w.Fund,
		Investor:       w.Investor,
		Token:          w.Token,
		Symbol:         w.Symbol,
		Amount:         w.Amount.Float(),
		AmountETH:      w.AmountETH.Float(),
		AmountUSD:      w.AmountUSD.Float(),
		TokenIn:        w.TokenIn,
		TokenInSymbol:  w.TokenInSymbol,
		TokenOut:       w.TokenOut,
		TokenOutSymbol: w.TokenOutSymbol,
		AmountIn:       w.AmountIn.Float(),
		AmountOut:      w.AmountOut.Float(),
		TokenID:        w.TokenID.IntString(),
		Token0:         w.Token0,
		Token1:         w.Token1,
		Token0Symbol:   w.Token0Symbol,
		Token1Symbol:   w.Token1Symbol,
		Amount0:        w.Amount0.Float(),
		Amount1:        w.Amount1.Float(),
	}
}

func NormalizeToken(w TokenWire) Token {
	address := w.Address
	if address == "" {
		address = w.ID
	}
	return Token{
		Address:          address,
		Symbol:           w.Symbol,
		Decimals:         w.Decimals.Int(),
		UpdatedTimestamp: w.UpdatedTimestamp.Int(),
	}
}

func NormalizeBlock(w BlockWire) Block {
	return Block{
		Number:    w.Number.Int(),
		Timestamp: w.Timestamp.Int(),
	}
}

// NormalizeAll 列表版本, 空输入返回空切片而非 nil
func NormalizeAll[W any, V any](wires []W, fn func(W) V) []V {
	out := make([]V, 0, len(wires))
	for _, w := range wires {
		out = append(out, fn(w))
	}
	return out
}
