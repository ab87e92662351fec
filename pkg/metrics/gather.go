package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Value gathers the process registry and returns the current value of the
// series named name (without namespace and subsystem) whose labels include
// every pair in labels. Counters and gauges report their value, histograms
// their sample count.
func Value(name string, labels map[string]string) (float64, error) {
	return globalManager.value(customRegistry, name, labels)
}

func (m *Manager) value(g prometheus.Gatherer, name string, labels map[string]string) (float64, error) {
	full := m.namespace + "_" + m.subsystem + "_" + name
	families, err := g.Gather()
	if err != nil {
		return 0, fmt.Errorf("gather: %w", err)
	}
	for _, mf := range families {
		if mf.GetName() != full {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if !hasLabels(metric, labels) {
				continue
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue(), nil
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue(), nil
			case metric.GetHistogram() != nil:
				return float64(metric.GetHistogram().GetSampleCount()), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s %v", ErrMetricNotFound, full, labels)
}

func hasLabels(metric *dto.Metric, want map[string]string) bool {
	matched := 0
	for _, lp := range metric.GetLabel() {
		if v, ok := want[lp.GetName()]; ok && v == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
