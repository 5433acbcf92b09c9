package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "churchattendance"

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by route pattern and status",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	RegistrationsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "registrations_submitted_total", Help: "Successful registration submissions",
	})
	ChildrenRegistered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "children_registered_total", Help: "Attendance rows created by submissions",
	})
	ValidationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "registration_validation_failures_total", Help: "Rejected submissions by message",
	}, []string{"message"})
	AttendanceToggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "attendance_toggles_total", Help: "Attendance check-in updates",
	}, []string{"attended"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, RegistrationsSubmitted, ChildrenRegistered,
		ValidationFailures, AttendanceToggles, DBPing)
}

// Handler exposes the default registry.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveDBPing records a health-check ping.
func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveSubmission records a successful submission with its child count.
func ObserveSubmission(children int) {
	RegistrationsSubmitted.Inc()
	ChildrenRegistered.Add(float64(children))
}

// ObserveToggle records an attendance update.
func ObserveToggle(attended bool) {
	AttendanceToggles.WithLabelValues(strconv.FormatBool(attended)).Inc()
}
