package metrics

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteText writes every metric of s in the Prometheus text exposition
// format, sorted by name. Metric names have dots and dashes replaced by
// underscores and are prefixed with namespace when it is non-empty.
// Histograms are written as summaries without quantiles plus _min and _max
// gauges.
func WriteText(w io.Writer, s Snapshot, namespace string) error {
	bw := bufio.NewWriter(w)
	for _, name := range sortedKeys(s.Counters) {
		n := promName(namespace, name)
		writeHeader(bw, n, "counter", name)
		fmt.Fprintf(bw, "%s %d\n", n, s.Counters[name])
	}
	for _, name := range sortedKeys(s.Gauges) {
		n := promName(namespace, name)
		writeHeader(bw, n, "gauge", name)
		fmt.Fprintf(bw, "%s %d\n", n, s.Gauges[name])
	}
	for _, name := range sortedKeys(s.Histograms) {
		h := s.Histograms[name]
		n := promName(namespace, name)
		writeHeader(bw, n, "summary", name)
		fmt.Fprintf(bw, "%s_sum %s\n", n, formatFloat(h.Sum))
		fmt.Fprintf(bw, "%s_count %d\n", n, h.Count)
		if h.Count > 0 {
			fmt.Fprintf(bw, "%s_min %s\n", n, formatFloat(h.Min))
			fmt.Fprintf(bw, "%s_max %s\n", n, formatFloat(h.Max))
		}
	}
	return bw.Flush()
}

func promName(namespace, name string) string {
	sanitized := strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if namespace != "" {
		return namespace + "_" + sanitized
	}
	return sanitized
}

func writeHeader(w io.Writer, name, metricType, help string) {
	fmt.Fprintf(w, "# HELP %s %s\n", name, help)
	fmt.Fprintf(w, "# TYPE %s %s\n", name, metricType)
}

// formatFloat formats v for the exposition format, including the special
// values.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return fmt.Sprintf("%g", v)
}
