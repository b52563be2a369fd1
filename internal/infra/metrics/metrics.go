package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rental_pricing"

// Recorder counts pricing and negotiation events on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	quotes             *prometheus.CounterVec
	offerDecisions     *prometheus.CounterVec
	negotiationsClosed *prometheus.CounterVec
	bookings           *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Price breakdowns computed, by rate tier and promo outcome.",
		}, []string{"tier", "promo_status"}),
		offerDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_decisions_total",
			Help:      "Owner responses to renter offers.",
		}, []string{"outcome", "reason"}),
		negotiationsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "negotiations_closed_total",
			Help:      "Negotiation sessions reaching a terminal status.",
		}, []string{"status"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings finalised, split by whether a negotiated total applied.",
		}, []string{"negotiated"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.quotes,
		r.offerDecisions,
		r.negotiationsClosed,
		r.bookings,
		r.httpRequests,
		r.httpDuration,
	)
	return r
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) QuoteComputed(tier, promoStatus string) {
	if promoStatus == "" {
		promoStatus = "none"
	}
	r.quotes.WithLabelValues(tier, promoStatus).Inc()
}

func (r *Recorder) OfferDecided(outcome, reason string) {
	r.offerDecisions.WithLabelValues(outcome, reason).Inc()
}

func (r *Recorder) NegotiationClosed(status string) {
	r.negotiationsClosed.WithLabelValues(status).Inc()
}

func (r *Recorder) BookingCreated(negotiated bool) {
	r.bookings.WithLabelValues(strconv.FormatBool(negotiated)).Inc()
}

func (r *Recorder) ObserveHTTP(method, route string, status int, seconds float64) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(seconds)
}
