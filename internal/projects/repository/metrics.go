package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opLoad = "load"
	opSave = "save"
)

var storeOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "nextgenxp_store_operations_total",
	Help: "Project document loads and saves by result",
}, []string{"op", "result"})

func recordStoreOp(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeOps.WithLabelValues(op, result).Inc()
}
