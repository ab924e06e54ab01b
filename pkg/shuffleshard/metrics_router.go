package shuffleshard

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	routerPrometheusMetrics sync.Once

	routerRoutingDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "shuffle_shard",
			Name:      "routing_decisions_total",
			Help:      "Number of requests for which a routing decision was made, or that were rejected.",
		},
		[]string{"outcome"})
	routerShardSizeHosts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "shuffle_shard",
			Name:      "shard_size_hosts",
			Help:      "Number of hosts contained in the shards of tenants for which requests were routed.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		})
)

type metricsRouter struct {
	base Router

	routingDecisionsSuccess              prometheus.Counter
	routingDecisionsUnderfilled          prometheus.Counter
	routingDecisionsMissingTenant        prometheus.Counter
	routingDecisionsInvalidConfiguration prometheus.Counter
	routingDecisionsError                prometheus.Counter
}

// NewMetricsRouter creates a decorator for Router that exposes
// Prometheus metrics on the number of routing decisions made and the
// sizes of the shards involved.
func NewMetricsRouter(base Router) Router {
	routerPrometheusMetrics.Do(func() {
		prometheus.MustRegister(routerRoutingDecisionsTotal)
		prometheus.MustRegister(routerShardSizeHosts)
	})

	return &metricsRouter{
		base: base,

		routingDecisionsSuccess:              routerRoutingDecisionsTotal.WithLabelValues("success"),
		routingDecisionsUnderfilled:          routerRoutingDecisionsTotal.WithLabelValues("underfilled"),
		routingDecisionsMissingTenant:        routerRoutingDecisionsTotal.WithLabelValues("missing_tenant"),
		routingDecisionsInvalidConfiguration: routerRoutingDecisionsTotal.WithLabelValues("invalid_configuration"),
		routingDecisionsError:                routerRoutingDecisionsTotal.WithLabelValues("error"),
	}
}

func (r *metricsRouter) RouteRequest(ctx context.Context, tenantID, path string) (*RoutingDecision, error) {
	decision, err := r.base.RouteRequest(ctx, tenantID, path)
	if err != nil {
		switch status.Code(err) {
		case codes.InvalidArgument:
			r.routingDecisionsMissingTenant.Inc()
		case codes.FailedPrecondition:
			r.routingDecisionsInvalidConfiguration.Inc()
		default:
			r.routingDecisionsError.Inc()
		}
		return nil, err
	}

	if decision.Underfilled() {
		r.routingDecisionsUnderfilled.Inc()
	} else {
		r.routingDecisionsSuccess.Inc()
	}
	routerShardSizeHosts.Observe(float64(len(decision.Shard)))
	return decision, nil
}
