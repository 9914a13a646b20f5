package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventzone_registrations_total",
			Help: "Registration commits by category and outcome",
		},
		[]string{"category", "outcome"},
	)

	remindersFired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventzone_reminders_fired_total",
			Help: "Reminders sent to registered users",
		},
	)

	fetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventzone_event_fetch_failures_total",
			Help: "Failed reads of the event collection",
		},
	)

	writeConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventzone_write_conflicts_total",
			Help: "Writes rejected because the target changed underneath them",
		},
		[]string{"kind"},
	)

	payments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventzone_payments_total",
			Help: "Payment state transitions by purpose",
		},
		[]string{"purpose", "status"},
	)
)

func RegistrationCommitted(category string, created bool) {
	outcome := "created"
	if !created {
		outcome = "duplicate"
	}
	registrations.WithLabelValues(category, outcome).Inc()
}

func ReminderFired() {
	remindersFired.Inc()
}

func FetchFailed() {
	fetchFailures.Inc()
}

func WriteConflict(kind string) {
	writeConflicts.WithLabelValues(kind).Inc()
}

func Payment(purpose, status string) {
	payments.WithLabelValues(purpose, status).Inc()
}

func PaymentsCounter() *prometheus.CounterVec {
	return payments
}
