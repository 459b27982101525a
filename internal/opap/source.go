package opap

import (
	"context"

	"github.com/lottoscope/lottoscope/internal/logger"
	"github.com/lottoscope/lottoscope/internal/models"
)

// Result is a loaded batch of draw records together with its origin, so the
// rest of the pipeline can tell live data from the demonstration sample.
type Result struct {
	Records []models.DrawRecord
	Origin  models.Origin
}

// Load fetches recent draws from the API, falling back to the built-in sample
// when the fetch fails for any reason. Fetch errors are logged, never
// propagated: the fallback guarantees the pipeline always has records.
func Load(ctx context.Context, client *Client, count int) Result {
	records, err := client.FetchRecentDraws(ctx, count)
	if err != nil {
		logger.Warn("Fetching draws failed, using sample data: %v", err)
		return Result{Records: SampleDraws(), Origin: models.OriginFallback}
	}

	logger.Info("Fetched %d draws from API", len(records))
	return Result{Records: records, Origin: models.OriginFetched}
}
