package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "experience_booking"

const (
	OutcomeCreated         = "created"
	OutcomeSlotUnavailable = "slot_unavailable"
	OutcomeInvalid         = "invalid"
	OutcomeStoreFailure    = "store_failure"
)

var (
	once sync.Once

	bookingAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_attempts_total",
			Help:      "Count of booking attempts by outcome.",
		},
		[]string{"outcome"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "experience_cache_lookups_total",
			Help:      "Count of experience detail cache lookups by result.",
		},
		[]string{"result"},
	)

	promoLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promo_lookups_total",
			Help:      "Count of promo code lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingAttempts, cacheLookups, promoLookups)
	})
}

func IncBookingAttempt(outcome string) {
	bookingAttempts.WithLabelValues(outcome).Inc()
}

func IncCacheLookup(hit bool) {
	if hit {
		cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	cacheLookups.WithLabelValues("miss").Inc()
}

func IncPromoLookup(found bool) {
	if found {
		promoLookups.WithLabelValues("found").Inc()
		return
	}
	promoLookups.WithLabelValues("not_found").Inc()
}
