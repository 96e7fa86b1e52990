package controllers

import (
	"context"
	"time"

	"itradebook/src/schemas"
)

const symbolCacheTTL = 5 * time.Minute

func (c *Controller) GetSymbols(ctx context.Context) ([]schemas.SymbolResponse, error) {
	if cached, ok := c.symbolCache.Get(time.Time{}); ok {
		return cached, nil
	}

	symbols, err := c.SymbolRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]schemas.SymbolResponse, 0, len(symbols))
	for _, symbol := range symbols {
		response = append(response, schemas.SymbolResponse{ID: symbol.ID, Name: symbol.Name})
	}

	c.symbolCache.Set(response, symbolCacheTTL)
	return response, nil
}
