package webserver

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gitlab.ozon.dev/safariproxd/hello-server/internal/metrics"
	"gitlab.ozon.dev/safariproxd/hello-server/internal/workerpool"
)

//go:generate minimock -i Executor -o ./mock/executor_mock.go -n ExecutorMock -p mock
//go:generate minimock -i Metrics -o ./mock/metrics_mock.go -n MetricsMock -p mock

// MaxRequestLine caps the bytes read while looking for the request line.
const MaxRequestLine = 8 << 10

var ErrRequestLineTooLong = errors.New("request line too long")

// Executor runs connection handlers. *workerpool.Pool satisfies it.
type Executor interface {
	Submit(job workerpool.Job) error
}

type Metrics interface {
	RequestHandled(status, route string, duration time.Duration)
	ConnectionRejected(reason string)
}

type Server struct {
	addr        string
	readTimeout time.Duration
	pool        Executor
	router      *Router
	limiter     *limiter.Limiter
	metrics     Metrics
	log         *slog.Logger
	tracer      trace.Tracer

	mu       sync.Mutex
	listener net.Listener
	closing  atomic.Bool
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

func WithMetrics(m Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLimiter answers 429 once a remote IP exceeds the limiter's rate.
func WithLimiter(l *limiter.Limiter) Option {
	return func(s *Server) { s.limiter = l }
}

func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) { s.readTimeout = d }
}

func New(addr string, pool Executor, router *Router, opts ...Option) *Server {
	s := &Server{
		addr:    addr,
		pool:    pool,
		router:  router,
		metrics: metrics.NewNoOpProvider(),
		log:     slog.Default(),
		tracer:  otel.Tracer("hello-server/webserver"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Listen() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", s.addr)
	}

	s.mu.Lock()
	s.listener = lis
	s.mu.Unlock()
	return nil
}

// Addr is the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections until Shutdown is called and hands each one to
// the pool. It returns nil after Shutdown.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	lis := s.listener
	s.mu.Unlock()
	if lis == nil {
		return errors.New("serve called before listen")
	}

	for {
		conn, err := lis.Accept()
		if err != nil {
			if s.closing.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				s.log.Warn("accept timeout", "error", err)
				continue
			}
			return errors.Wrap(err, "accept")
		}
		s.dispatch(ctx, conn)
	}
}

func (s *Server) dispatch(ctx context.Context, conn net.Conn) {
	limited := s.limiter != nil && s.rateLimited(ctx, conn)
	if limited {
		s.metrics.ConnectionRejected("rate_limited")
	}

	if err := s.pool.Submit(func() { s.handleConn(conn, limited) }); err != nil {
		s.metrics.ConnectionRejected("pool_closed")
		s.log.Warn("connection dropped", "remote", conn.RemoteAddr().String(), "error", err)
		_ = conn.Close()
	}
}

func (s *Server) rateLimited(ctx context.Context, conn net.Conn) bool {
	key := conn.RemoteAddr().String()
	if host, _, err := net.SplitHostPort(key); err == nil {
		key = host
	}

	lctx, err := s.limiter.Get(ctx, key)
	if err != nil {
		s.log.Warn("rate limiter failed", "error", err)
		return false
	}
	return lctx.Reached
}

// handleConn answers one request. A rate limited connection still has its
// request line read so the client sees the 429 instead of a reset.
func (s *Server) handleConn(conn net.Conn, limited bool) {
	defer conn.Close()

	start := time.Now()
	_, span := s.tracer.Start(context.Background(), "conn.handle",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("net.peer.addr", conn.RemoteAddr().String())),
	)
	defer span.End()

	if s.readTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	}
	line, err := readRequestLine(conn)
	if err != nil {
		if errors.Is(err, ErrRequestLineTooLong) {
			s.metrics.ConnectionRejected("request_too_long")
		}
		s.log.Debug("read request line failed", "remote", conn.RemoteAddr().String(), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "read request line")
		return
	}

	resp := s.router.Match(line)
	if limited {
		resp = Response{Status: StatusTooManyRequests, Route: RouteRateLimited}
	}
	span.SetAttributes(
		attribute.String("request.line", line),
		attribute.String("route", resp.Route),
		attribute.String("response.status", resp.Status),
	)

	if resp.Delay > 0 {
		time.Sleep(resp.Delay)
	}

	if _, err := resp.WriteTo(conn); err != nil {
		s.log.Warn("write response failed", "remote", conn.RemoteAddr().String(), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "write response")
		return
	}

	if !limited {
		s.metrics.RequestHandled(resp.Status, resp.Route, time.Since(start))
	}
	s.log.Debug("request served", "line", line, "status", resp.Status, "duration", time.Since(start))
}

// readRequestLine returns the first line without its line terminator. A final
// line without a newline is accepted unless it fills MaxRequestLine.
func readRequestLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(io.LimitReader(r, MaxRequestLine)).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", errors.Wrap(err, "read request line")
		}
		if len(line) >= MaxRequestLine {
			return "", ErrRequestLineTooLong
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Shutdown stops accepting connections. Connections already handed to the
// pool are finished by the pool.
func (s *Server) Shutdown(ctx context.Context) error {
	s.closing.Store(true)

	s.mu.Lock()
	lis := s.listener
	s.mu.Unlock()
	if lis == nil {
		return nil
	}
	if err := lis.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return errors.Wrap(err, "close listener")
	}
	s.log.Info("listener closed", "addr", lis.Addr().String())
	return nil
}
