package tracer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
	config "github.com/uber/jaeger-client-go/config"
)

// 65000 bytes, max value length before jaeger cannot show the span
const maxPacketSize = int(65000 * 0.9)

var agentAddress string

// InitOpenTracing with jaeger implementation, must be called in service bootstrap.
// Empty agentHost leaves the global noop tracer in place.
func InitOpenTracing(agentHost, serviceName string) error {
	if agentHost == "" {
		return nil
	}

	cfg := &config.Configuration{
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:           true,
			LocalAgentHostPort: agentHost,
		},
		ServiceName: serviceName,
	}
	tracer, _, err := cfg.NewTracer(config.MaxTagValueLength(maxPacketSize))
	if err != nil {
		return err
	}
	agentAddress = agentHost
	opentracing.SetGlobalTracer(tracer)
	return nil
}

// Tracer abstraction
type Tracer interface {
	Context() context.Context
	SetTag(key string, value interface{})
	SetError(err error)
	Log(key string, value interface{})
	Finish(additionalTags ...map[string]interface{})
}

type tracerImpl struct {
	ctx  context.Context
	span opentracing.Span
}

// StartTrace starting trace child span from parent span in context
func StartTrace(ctx context.Context, operationName string) Tracer {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		span, ctx = opentracing.StartSpanFromContext(ctx, operationName)
	} else {
		span = opentracing.GlobalTracer().StartSpan(operationName, opentracing.ChildOf(span.Context()))
		ctx = opentracing.ContextWithSpan(ctx, span)
	}
	return &tracerImpl{ctx: ctx, span: span}
}

// StartTraceWithContext starting trace child span from parent span, returning tracer and context
func StartTraceWithContext(ctx context.Context, operationName string) (Tracer, context.Context) {
	t := StartTrace(ctx, operationName)
	return t, t.Context()
}

func (t *tracerImpl) Context() context.Context {
	return t.ctx
}

func (t *tracerImpl) SetTag(key string, value interface{}) {
	t.span.SetTag(key, toString(value))
}

func (t *tracerImpl) SetError(err error) {
	SetError(t.ctx, err)
}

func (t *tracerImpl) Log(key string, value interface{}) {
	Log(t.ctx, key, value)
}

// Finish the span, must be called in deferred function
func (t *tracerImpl) Finish(additionalTags ...map[string]interface{}) {
	defer t.span.Finish()
	for _, tags := range additionalTags {
		for k, v := range tags {
			t.span.SetTag(k, toString(v))
		}
	}
}

// Log to active span in context
func Log(ctx context.Context, key string, value interface{}) {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return
	}
	span.LogKV(key, toString(value))
}

// SetError mark active span in context as error
func SetError(ctx context.Context, err error) {
	span := opentracing.SpanFromContext(ctx)
	if span == nil || err == nil {
		return
	}

	ext.Error.Set(span, true)
	span.SetTag("error.message", err.Error())
	span.LogFields(otlog.String("stacktrace", string(debug.Stack())))
}

// GetTraceID from active span in context
func GetTraceID(ctx context.Context) string {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return ""
	}

	traceID := fmt.Sprintf("%+v", span)
	splits := strings.Split(traceID, ":")
	if len(splits) > 0 {
		return splits[0]
	}
	return traceID
}

// GetTraceURL for jaeger dashboard link
func GetTraceURL(ctx context.Context) (u string) {
	traceID := GetTraceID(ctx)
	if traceID == "" || agentAddress == "" {
		return
	}

	urlAgent := strings.Split(agentAddress, ":")
	if len(urlAgent) > 0 {
		u = fmt.Sprintf("http://%s:16686/trace/%s", urlAgent[0], traceID)
	}
	return
}

// InjectHTTPHeader inject trace header to outgoing http request
func InjectHTTPHeader(ctx context.Context, req *http.Request) {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return
	}
	ext.SpanKindRPCClient.Set(span)
	ext.HTTPUrl.Set(span, req.URL.String())
	ext.HTTPMethod.Set(span, req.Method)
	opentracing.GlobalTracer().Inject(
		span.Context(),
		opentracing.HTTPHeaders,
		opentracing.HTTPHeadersCarrier(req.Header),
	)
}

func toString(v interface{}) (s string) {
	switch val := v.(type) {
	case string:
		s = val
	case int:
		s = strconv.Itoa(val)
	case []byte:
		s = string(val)
	default:
		b, _ := json.Marshal(val)
		s = string(b)
	}

	if len(s) >= maxPacketSize {
		s = fmt.Sprintf("<<overflow, size: %d bytes>>", len(s))
	}
	return
}
