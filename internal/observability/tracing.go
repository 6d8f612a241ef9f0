package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of every span the tool emits.
const TracerName = "github.com/Black-And-White-Club/bracketeering"

// Tracer returns the tracer from the global provider. Without an exporter
// configured the global provider is a no-op.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
