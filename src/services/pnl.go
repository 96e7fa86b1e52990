package services

import (
	"math"

	"itradebook/src/utils"
)

// RealizedPnL is the offset rule applied to one side of the book: once both
// average prices are known, the matched quantity is the smaller of the two
// sizes and the spread on it is realized.
func RealizedPnL(buySize, buyPrice, sellSize, sellPrice float64) float64 {
	if buyPrice > 0 && sellPrice > 0 {
		return (sellPrice - buyPrice) * math.Min(buySize, sellSize)
	}
	return 0
}

// UnrealizedPnL marks the open remainder of the position to the market
// price. A net-long book carries (size delta) x (market - avg buy), a
// net-short book (size delta) x (avg sell - market).
func UnrealizedPnL(buySize, buyPrice, sellSize, sellPrice, marketPrice float64) float64 {
	switch {
	case buySize > sellSize:
		return (buySize - sellSize) * (marketPrice - buyPrice)
	case sellSize > buySize:
		return (sellSize - buySize) * (sellPrice - marketPrice)
	}
	return 0
}

// SymbolPnL holds the four per-symbol P&L figures before rounding.
type SymbolPnL struct {
	CompanyRealized   float64
	CompanyUnrealized float64
	ExpRealized       float64
	ExpUnrealized     float64
}

// ComputeSymbolPnL evaluates both book levels. The exp book is the
// company's mirror counterparty, so its realized and unrealized values are
// the level-2 formula negated. The sign flip is a ledger convention carried
// over as-is; changing it needs confirmation from the ledger owners.
func ComputeSymbolPnL(marketPrice,
	buySize1, buyPrice1, sellSize1, sellPrice1,
	buySize2, buyPrice2, sellSize2, sellPrice2 float64) SymbolPnL {
	return SymbolPnL{
		CompanyRealized:   RealizedPnL(buySize1, buyPrice1, sellSize1, sellPrice1),
		CompanyUnrealized: UnrealizedPnL(buySize1, buyPrice1, sellSize1, sellPrice1, marketPrice),
		ExpRealized:       -RealizedPnL(buySize2, buyPrice2, sellSize2, sellPrice2),
		ExpUnrealized:     -UnrealizedPnL(buySize2, buyPrice2, sellSize2, sellPrice2, marketPrice),
	}
}

// Rounded returns a copy with every figure rounded to the cent.
func (p SymbolPnL) Rounded() SymbolPnL {
	return SymbolPnL{
		CompanyRealized:   utils.Round2(p.CompanyRealized),
		CompanyUnrealized: utils.Round2(p.CompanyUnrealized),
		ExpRealized:       utils.Round2(p.ExpRealized),
		ExpUnrealized:     utils.Round2(p.ExpUnrealized),
	}
}
