package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EventsProcessed counts events the session engine actually applied.
	EventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doodlesphere_events_processed_total",
		Help: "Events applied by the room session engine, by event kind.",
	}, []string{"event"})

	// EventsDropped counts events rejected before touching room state.
	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doodlesphere_events_dropped_total",
		Help: "Events dropped by the room session engine, by reason.",
	}, []string{"reason"})

	// ActiveRooms tracks the number of rooms with at least one member.
	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "doodlesphere_active_rooms",
		Help: "Rooms currently held in the room store.",
	})
)

// Drop reasons.
const (
	ReasonDegenerate  = "degenerate_drawable"
	ReasonUnknownRoom = "unknown_room"
	ReasonEmptyStack  = "empty_stack"
)

// Handler exposes Prometheus metrics at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
