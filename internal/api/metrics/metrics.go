// Package metrics defines the custom Prometheus metrics for the tracking
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking"

// ShipmentsCreatedTotal counts newly created shipments.
var ShipmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created.",
	},
)

// ShipmentEventsTotal counts ledger mutations.
// Label:
//   - action: "appended" or "removed"
var ShipmentEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipment_events_total",
		Help:      "Total number of shipment ledger mutations, by action.",
	},
	[]string{"action"},
)

// TrackingLookupsTotal counts public tracking-number lookups.
// Label:
//   - result: "found" or "not_found"
var TrackingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of public tracking lookups, by result.",
	},
	[]string{"result"},
)

// QuotesCreatedTotal counts submitted quote requests.
var QuotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_created_total",
		Help:      "Total number of quote requests submitted.",
	},
)
