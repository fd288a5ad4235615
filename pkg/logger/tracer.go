package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdk_trace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

func InitTrace(serviceNamespace, serviceName string) {
	traceProvider := sdk_trace.NewTracerProvider(
		sdk_trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNamespaceKey.String(serviceNamespace),
			semconv.ServiceNameKey.String(serviceName),
		)),
	)
	otel.SetTracerProvider(traceProvider)
}

func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName)
}

// StartQuerySpan 为一次 GraphQL 请求开启 span
func StartQuerySpan(ctx context.Context, endpoint, operation string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("graphql").Start(ctx, operation)
	span.SetAttributes(
		attribute.String("graphql.operation", operation),
		attribute.String("graphql.endpoint", endpoint),
	)
	return ctx, span
}

// EndSpan 结束 span, err 非空时记录错误状态
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
