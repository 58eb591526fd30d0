package scrape

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts outbound HTTP requests dispatched by the fetcher.
	requestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "materialdb_requests_total",
		Help: "The total number of HTTP requests sent.",
	})
	// requestErrorsTotal counts requests that failed after retries or with
	// a non-200 status.
	requestErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "materialdb_request_errors_total",
		Help: "The total number of failed HTTP requests.",
	})
	// productsExtracted counts raw products emitted by strategies, labeled
	// by the strategy that produced them.
	productsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "materialdb_products_extracted_total",
		Help: "The total number of raw products emitted by extraction strategies.",
	}, []string{"strategy"})
	// productsRejected counts records dropped by the validation engine.
	productsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "materialdb_products_rejected_total",
		Help: "The total number of records rejected by validation.",
	}, []string{"list"})
)
