package controllers

import (
	"context"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"
	"tracker/src/utils/render"
)

const summaryCacheKey = "portfolio:summary"
const summaryCacheTTL = 2 * time.Second

func (c *Controller) GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error) {
	if c.Cache != nil {
		var cached schemas.PortfolioSummary
		if err := c.Cache.Get(summaryCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	summary, err := c.PortfolioService.Summary(ctx)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if err := c.Cache.Set(summaryCacheKey, summary, summaryCacheTTL); err != nil {
			utils.LoggerFromContext(ctx).Warnf("could not cache portfolio summary: %v", err)
		}
	}
	return summary, nil
}

// GetPortfolioReport renders the current allocation as an HTML pie chart.
func (c *Controller) GetPortfolioReport(ctx context.Context) (string, error) {
	summary, err := c.GetPortfolioSummary(ctx)
	if err != nil {
		return "", err
	}

	allocation := make(map[string]float64, len(summary.AssetAllocation))
	for _, slice := range summary.AssetAllocation {
		allocation[slice.Name] = slice.Value
	}
	return render.RenderAllocationPie("Asset Allocation", allocation)
}

func (c *Controller) invalidateSummaryCache() {
	if c.Cache == nil {
		return
	}
	_ = c.Cache.Delete(summaryCacheKey)
}
