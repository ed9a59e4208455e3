// Package grpc provides the grpc-go server wrapper and the unary
// interceptor stack shared by RPC transports
package grpc

import (
	"context"
	"net"
	"runtime/debug"
	"time"

	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/logger"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// MetaRequestID is the trace metadata key honored on the way in and
// mirrored in response headers
const MetaRequestID = "x-request-id"

// Server wraps *grpc.Server with lifecycle management mirroring the
// HTTP side
type Server struct {
	addr string
	srv  *grpc.Server
}

// Options bounds server concurrency
type Options struct {
	// Workers caps concurrently executing handlers. Zero means
	// no explicit bound.
	Workers uint32
}

// NewServer creates a grpc server listening on addr
func NewServer(addr string, opt Options, extra ...grpc.ServerOption) *Server {
	sopts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryRequestID, UnaryAccessLog, UnaryRecover),
	}
	if opt.Workers > 0 {
		sopts = append(sopts,
			grpc.NumStreamWorkers(opt.Workers),
			grpc.MaxConcurrentStreams(opt.Workers),
		)
	}
	sopts = append(sopts, extra...)
	return &Server{addr: addr, srv: grpc.NewServer(sopts...)}
}

// Registrar exposes the underlying server for service registration
func (s *Server) Registrar() grpc.ServiceRegistrar { return s.srv }

// Addr returns the listening address
func (s *Server) Addr() string { return s.addr }

// Run starts the server and blocks until shutdown
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("grpc")

	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "grpc listen on %s", s.addr)
	}
	log.Info().Str("addr", s.addr).Msg("grpc listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(lis) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		done := make(chan struct{})
		go func() {
			s.srv.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(10 * time.Second):
			s.srv.Stop()
		}
		return nil
	}
}

// UnaryRequestID propagates a caller-supplied trace id from incoming
// metadata or generates a fresh one, stashing it on the context and
// mirroring it in the response header
func UnaryRequestID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(MetaRequestID); len(vals) > 0 {
			id = vals[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(MetaRequestID, id))
	return handler(logger.WithRequest(ctx, id), req)
}

// UnaryAccessLog logs one line per call with method, duration, and outcome
func UnaryAccessLog(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	evt := logger.C(ctx).Info()
	if err != nil {
		evt = logger.C(ctx).Warn().Err(err)
	}
	evt.
		Str("method", info.FullMethod).
		Dur("duration", time.Since(start)).
		Msg("rpc")
	return resp, err
}

// UnaryRecover converts panics into an Internal status and logs the stack
func UnaryRecover(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if v := recover(); v != nil {
			logger.C(ctx).Error().
				Interface("panic", v).
				Msgf("panic recovered\n%s", debug.Stack())
			err = perr.ToGRPC(perr.PanicErrf("panic recovered"))
		}
	}()
	return handler(ctx, req)
}
