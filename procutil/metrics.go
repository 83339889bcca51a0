package procutil

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFound    = "found"
	resultNotFound = "not_found"
	resultError    = "error"
)

var (
	lookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "procfind_lookups_total",
			Help: "Total number of process lookups by outcome",
		},
		[]string{"result"},
	)

	entriesScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "procfind_entries_scanned_total",
			Help: "Total number of process table entries compared during lookups",
		},
	)

	snapshotsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "procfind_snapshots_open",
			Help: "Number of process table snapshots currently held open",
		},
	)
)

// recordLookup records metrics for a finished lookup.
func recordLookup(result string, scanned int) {
	lookupsTotal.WithLabelValues(result).Inc()
	if scanned > 0 {
		entriesScanned.Add(float64(scanned))
	}
}
