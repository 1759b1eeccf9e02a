package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_admin",
			Subsystem: "http",
			Name:      "orders_created_total",
			Help:      "Total number of orders created via the API",
		},
	)

	ordersUpdatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_admin",
			Subsystem: "http",
			Name:      "orders_updated_total",
			Help:      "Total number of orders updated via the API",
		},
	)

	ordersDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_admin",
			Subsystem: "http",
			Name:      "orders_deleted_total",
			Help:      "Total number of orders deleted via the API",
		},
	)

	orderLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_admin",
			Subsystem: "http",
			Name:      "order_lookups_total",
			Help:      "Successful single-order lookups by identifier space",
		},
		[]string{"resolved_by"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreatedTotal,
		ordersUpdatedTotal,
		ordersDeletedTotal,
		orderLookupsTotal,
	)
}
