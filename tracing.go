package spline

import "github.com/npillmayer/schuko/tracing"

// tracer traces to the "spline" key.
func tracer() tracing.Trace {
	return tracing.Select("spline")
}
