package usecase

import "github.com/VictoriaMetrics/metrics"

var (
	sendsCounter = func(channel, kind, status string) *metrics.Counter {
		return metrics.GetOrCreateCounter(`gateway_sends_total{channel="` + channel + `",kind="` + kind + `",status="` + status + `"}`)
	}
	deliverySaveFailures = metrics.NewCounter(`delivery_save_failures_total`)
)
