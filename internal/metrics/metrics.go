package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service-level Prometheus counters exposed on /metrics.
type Metrics struct {
	UserRegistrations prometheus.Counter
	UserLogins        prometheus.Counter
	BookingsCreated   prometheus.Counter
	BookingsDeleted   prometheus.Counter
}

var (
	instance *Metrics
	once     sync.Once
)

// New returns the process-wide metrics set. Counters register against the
// default registry, so construction must happen once.
func New() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			UserRegistrations: promauto.NewCounter(prometheus.CounterOpts{
				Name: "cinetix_user_registrations_total",
				Help: "Total number of registered users",
			}),
			UserLogins: promauto.NewCounter(prometheus.CounterOpts{
				Name: "cinetix_user_logins_total",
				Help: "Total number of successful logins",
			}),
			BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Name: "cinetix_bookings_created_total",
				Help: "Total number of bookings created",
			}),
			BookingsDeleted: promauto.NewCounter(prometheus.CounterOpts{
				Name: "cinetix_bookings_deleted_total",
				Help: "Total number of bookings deleted",
			}),
		}
	})

	return instance
}
