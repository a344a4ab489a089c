package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FormatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_downloader_format_requests_total",
		Help: "Format discovery requests by outcome.",
	}, []string{"status"})

	Downloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_downloader_downloads_total",
		Help: "Download requests by outcome.",
	}, []string{"status"})

	DownloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "video_downloader_download_duration_seconds",
		Help:    "Wall time of the engine download/merge phase.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)
