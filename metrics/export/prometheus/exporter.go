package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	totpgate "github.com/MrEthical07/totpgate"
	"github.com/MrEthical07/totpgate/metrics/export/internaldefs"
)

type metricsSource interface {
	MetricsSnapshot() totpgate.MetricsSnapshot
	AuditDropped() uint64
}

// Exporter renders totpgate metrics in Prometheus text exposition format.
type Exporter struct {
	source metricsSource
}

// NewExporter creates an exporter that reads from the given engine.
func NewExporter(engine *totpgate.Engine) *Exporter {
	return &Exporter{source: engine}
}

// NewExporterFromSource creates an exporter from a custom source.
func NewExporterFromSource(source metricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler returns an http.Handler that serves the rendered metrics.
func (p *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(p.Render()))
	})
}

// Render writes the current counters, one series per engine metric plus
// the audit drop counter.
func (p *Exporter) Render() string {
	if p == nil || p.source == nil {
		return ""
	}

	snapshot := p.source.MetricsSnapshot()

	var b strings.Builder
	for _, def := range internaldefs.CounterDefs {
		b.WriteString("# HELP " + def.Name + " " + def.Help + "\n")
		b.WriteString("# TYPE " + def.Name + " counter\n")
		b.WriteString(def.Name + " " + strconv.FormatUint(snapshot.Counters[def.ID], 10) + "\n")
	}

	b.WriteString("# HELP " + internaldefs.AuditDroppedName + " Dropped audit events due to dispatcher backpressure.\n")
	b.WriteString("# TYPE " + internaldefs.AuditDroppedName + " counter\n")
	b.WriteString(internaldefs.AuditDroppedName + " " + strconv.FormatUint(p.source.AuditDropped(), 10) + "\n")

	return b.String()
}
