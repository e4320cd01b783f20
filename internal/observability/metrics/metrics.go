package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts.",
		},
		[]string{"result"},
	)

	TokensIssuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_tokens_issued_total",
			Help: "Total number of bearer tokens issued.",
		},
		[]string{"result"},
	)

	UsersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of user registration attempts.",
		},
		[]string{"result"},
	)

	MessagesSentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_sent_total",
			Help: "Total number of message creation attempts.",
		},
		[]string{"result"},
	)

	MessagesDeletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_deleted_total",
			Help: "Total number of per-actor message deletions.",
		},
		[]string{"actor"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		LoginsTotal,
		TokensIssuedTotal,
		UsersCreatedTotal,
		MessagesSentTotal,
		MessagesDeletedTotal,
	)
}
