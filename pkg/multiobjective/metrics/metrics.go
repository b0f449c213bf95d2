package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/archive"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

const namespace = "paretokit"

// Recorder exports archive mutations and ranking shapes as Prometheus metrics.
type Recorder struct {
	admissions *prometheus.CounterVec
	rejections *prometheus.CounterVec
	evictions  *prometheus.CounterVec
	size       *prometheus.GaugeVec

	fronts         *prometheus.HistogramVec
	firstFrontSize *prometheus.HistogramVec
}

// NewRecorder registers the metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		// admissions counts candidates inserted into an archive
		admissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_admissions_total",
			Help:      "Total candidates admitted to the archive",
		}, []string{"archive"}),

		// rejections counts candidates turned away, by reason
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_rejections_total",
			Help:      "Total candidates rejected by the archive by reason",
		}, []string{"archive", "reason"}),

		evictions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_evictions_total",
			Help:      "Total members evicted from the archive on overflow",
		}, []string{"archive"}),

		size: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "archive_size",
			Help:      "Current number of archive members",
		}, []string{"archive"}),

		fronts: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranking_fronts",
			Help:      "Number of fronts per computed ranking",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}, []string{"algorithm"}),

		firstFrontSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranking_first_front_size",
			Help:      "Number of non-dominated individuals per computed ranking",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512
		}, []string{"algorithm"}),
	}
}

// ObserveRanking records the shape of a ranking computed by algorithm.
func (r *Recorder) ObserveRanking(algorithm string, ranking *framework.Ranking) {
	r.fronts.WithLabelValues(algorithm).Observe(float64(ranking.NumberOfSubFronts()))
	r.firstFrontSize.WithLabelValues(algorithm).Observe(float64(len(ranking.FrontIndices(0))))
}

// Archive returns an archive.Recorder whose series carry the given archive name.
func (r *Recorder) Archive(name string) archive.Recorder {
	return &archiveRecorder{
		admissions: r.admissions.WithLabelValues(name),
		evictions:  r.evictions.WithLabelValues(name),
		size:       r.size.WithLabelValues(name),
		rejections: r.rejections.MustCurryWith(prometheus.Labels{"archive": name}),
	}
}

type archiveRecorder struct {
	admissions prometheus.Counter
	evictions  prometheus.Counter
	size       prometheus.Gauge
	rejections *prometheus.CounterVec
}

func (a *archiveRecorder) Admitted(size int) {
	a.admissions.Inc()
	a.size.Set(float64(size))
}

func (a *archiveRecorder) Rejected(reason string) {
	a.rejections.WithLabelValues(reason).Inc()
}

func (a *archiveRecorder) Evicted() {
	a.evictions.Inc()
}
