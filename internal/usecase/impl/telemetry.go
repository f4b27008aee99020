package impl

import (
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	backgroundWriteFailed metric.Int64Counter
	enrichmentFetchFailed metric.Int64Counter
)

func init() {
	meter := otel.Meter("tablescout/internal/usecase/impl")

	var err error

	backgroundWriteFailed, err = meter.Int64Counter(
		"tablescout.background.write_failed",
		metric.WithDescription("Number of fire-and-forget store writes that failed"),
	)
	if err != nil {
		log.Fatalf("failed to create background.write_failed counter: %v", err)
	}

	enrichmentFetchFailed, err = meter.Int64Counter(
		"tablescout.enrichment.fetch_failed",
		metric.WithDescription("Number of upstream place fetches that failed during enrichment"),
	)
	if err != nil {
		log.Fatalf("failed to create enrichment.fetch_failed counter: %v", err)
	}
}
