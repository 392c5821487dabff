// Package metrics defines the custom Prometheus metrics of the user catalog
// API. Everything is registered on the default registry via promauto; HTTP
// request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usercatalog"

// ── Account metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts token requests.
// Label:
//   - result: "success", "wrong_credentials", "inactive" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of token requests, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts self-registrations.
// Label:
//   - result: "created", "duplicate" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests rejected by the access chain.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_user", "inactive" or "error"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of protected requests rejected before reaching a handler.",
	},
	[]string{"reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogCacheLookupsTotal counts product cache reads.
// Label:
//   - result: "hit" or "miss"
var CatalogCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_lookups_total",
		Help:      "Total number of catalog cache lookups, by result.",
	},
	[]string{"result"},
)
