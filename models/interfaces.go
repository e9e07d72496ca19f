package models

import "context"

// HistoryProvider is the market-data collaborator contract: it delivers
// a clean, time-ordered observation series for one instrument. Retries,
// caching and provider fallback live behind this interface.
type HistoryProvider interface {
	GetHistory(ctx context.Context, symbol string, lookbackDays int) ([]Observation, error)
}
