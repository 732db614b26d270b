// Copyright 2017-2018, Pulumi Corporation.  All rights reserved.

package cmdutil

import (
	"io"

	"github.com/golang/glog"
	opentracing "github.com/opentracing/opentracing-go"
	jaeger "github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/transport/zipkin"
)

// TracingEndpoint is the Zipkin-compatible tracing endpoint where tracing data will be sent.
var TracingEndpoint string

var traceCloser io.Closer

// InitTracing installs a global tracer.  Without an endpoint, spans are kept in memory and dropped.
func InitTracing(name string, tracingEndpoint string) {
	TracingEndpoint = tracingEndpoint

	var reporter jaeger.Reporter
	if tracingEndpoint == "" {
		reporter = jaeger.NewInMemoryReporter()
	} else {
		// Jaeger tracer can be initialized with a transport that will report tracing Spans to a Zipkin backend.
		transport, err := zipkin.NewHTTPTransport(
			tracingEndpoint,
			zipkin.HTTPBatchSize(1),
			zipkin.HTTPLogger(jaeger.StdLogger),
		)
		if err != nil {
			glog.Fatalf("Cannot initialize HTTP transport: %v", err)
		}
		reporter = jaeger.NewRemoteReporter(transport)
	}

	tracer, closer := jaeger.NewTracer(
		name,
		jaeger.NewConstSampler(true), // sample all traces
		reporter,
	)

	// Store the closer so that we can flush the Jaeger span cache on process exit.
	traceCloser = closer

	opentracing.SetGlobalTracer(tracer)
}

// CloseTracing ensures that all pending spans have been flushed.  It should be called before process exit.
func CloseTracing() {
	if traceCloser == nil {
		return
	}
	if err := traceCloser.Close(); err != nil {
		glog.V(3).Infof("closing tracer: %v", err)
	}
}
