package http

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scope = "github.com/kasperdew/stroom/http"

var (
	tracer = otel.Tracer(scope)
	meter  = otel.Meter(scope)

	connsHandled   metric.Int64Counter
	decodeFailures metric.Int64Counter
	responses      metric.Int64Counter
	queueDepth     metric.Int64UpDownCounter
)

func init() {
	var err error
	connsHandled, err = meter.Int64Counter("stroom.connections",
		metric.WithDescription("The number of connections processed"),
		metric.WithUnit("{connection}"))
	if err != nil {
		panic(err)
	}

	decodeFailures, err = meter.Int64Counter("stroom.decode_failures",
		metric.WithDescription("The number of connections dropped because the request could not be decoded"),
		metric.WithUnit("{connection}"))
	if err != nil {
		panic(err)
	}

	responses, err = meter.Int64Counter("stroom.responses",
		metric.WithDescription("The number of responses written, by status code"),
		metric.WithUnit("{response}"))
	if err != nil {
		panic(err)
	}

	queueDepth, err = meter.Int64UpDownCounter("stroom.queue_depth",
		metric.WithDescription("Accepted connections waiting for a worker"),
		metric.WithUnit("{connection}"))
	if err != nil {
		panic(err)
	}
}

// Conn owns one accepted stream exclusively for its whole lifetime and
// carries the connection's copy of the server config.
type Conn struct {
	stream      net.Conn
	router      *Router
	config      Config
	readTimeout time.Duration
	id          string
}

func newConn(stream net.Conn, router *Router, config Config, readTimeout time.Duration) *Conn {
	return &Conn{
		stream:      stream,
		router:      router,
		config:      config,
		readTimeout: readTimeout,
		id:          uuid.NewString(),
	}
}

// process drives decode, dispatch, encode and write. The stream is
// released on every exit path, panics included; a decode failure
// closes the connection without a response since nothing valid can be
// framed for it.
func (conn *Conn) process() {
	ctx, span := tracer.Start(context.Background(), "connection",
		trace.WithAttributes(attribute.String("conn.id", conn.id)))
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("panic while processing connection", "conn", conn.id, "panic", rec)
		}
		if err := conn.stream.Close(); err != nil {
			slog.Error("closing connection", "conn", conn.id, "error", err)
		}
	}()

	connsHandled.Add(ctx, 1)
	slog.Info("accepted connection", "conn", conn.id, "remote", conn.stream.RemoteAddr())

	if err := conn.stream.SetReadDeadline(time.Now().Add(conn.readTimeout)); err != nil {
		slog.Error("setting read deadline", "conn", conn.id, "error", err)
		return
	}

	var req Request
	if err := req.Decode(conn.stream); err != nil {
		decodeFailures.Add(ctx, 1)
		slog.Error("decoding request", "conn", conn.id, "error", err)
		return
	}
	slog.Info("received request", "conn", conn.id, "method", req.Method.String(), "target", req.Target)

	res := conn.router.Dispatch(&req, conn.config)
	span.SetAttributes(
		attribute.String("http.method", req.Method.String()),
		attribute.String("http.target", req.Target),
		attribute.Int("http.status", int(res.Status)),
	)
	responses.Add(ctx, 1, metric.WithAttributes(attribute.Int("http.status", int(res.Status))))

	if _, err := conn.stream.Write(res.Encode()); err != nil {
		slog.Error("writing response", "conn", conn.id, "error", err)
	}
}
