package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache effectiveness counters, labelled by cache name
// (course, course_list, session).
var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "learnaray_cache_hits_total",
		Help: "Number of cache reads served without touching the store.",
	}, []string{"cache"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "learnaray_cache_misses_total",
		Help: "Number of cache reads that fell through to the store.",
	}, []string{"cache"})

	MailEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnaray_mail_enqueued_total",
		Help: "Number of outbound mail jobs handed to the dispatcher.",
	})

	NotificationsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnaray_notifications_swept_total",
		Help: "Number of read notifications removed by the retention sweep.",
	})
)
