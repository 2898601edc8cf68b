// Package server implements the lease manager service surface.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpctrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/google.golang.org/grpc"

	"github.com/fleetrobotics/lease-kit/cluster"
	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"
	"github.com/fleetrobotics/lease-kit/leasetable"
)

// Server implements the lease manager APIs.
type Server struct {
	HTTPListen string
	GRPCListen string
	Table      *leasetable.Table
	Authority  cluster.Authority

	clock  clock.Clock
	reads  RequestThrottle
	writes RequestThrottle

	// test disables request throttling in tests.
	test bool
}

// Config holds Server configurations.
type Config struct {
	HTTPListen   string
	GRPCListen   string
	ReadReqRate  int
	WriteReqRate int

	test bool
}

// NewServer initializes a *Server.
func NewServer(t *leasetable.Table, a cluster.Authority, c Config) (*Server, error) {
	if c.ReadReqRate < 1 {
		c.ReadReqRate = 1
	}
	if c.WriteReqRate < 1 {
		c.WriteReqRate = 1
	}

	reads, err := NewRequestThrottle(RequestThrottleConfig{
		Capacity: c.ReadReqRate,
		Rate:     c.ReadReqRate,
	})
	if err != nil {
		return nil, err
	}

	writes, err := NewRequestThrottle(RequestThrottleConfig{
		Capacity: c.WriteReqRate,
		Rate:     c.WriteReqRate,
	})
	if err != nil {
		return nil, err
	}

	if a == nil {
		a = cluster.Standalone{}
	}

	return &Server{
		HTTPListen: c.HTTPListen,
		GRPCListen: c.GRPCListen,
		Table:      t,
		Authority:  a,
		clock:      clock.WallClock,
		reads:      reads,
		writes:     writes,
		test:       c.test,
	}, nil
}

// Run* methods take a Context for cancellation and WaitGroup for
// blocking on graceful shutdowns in main. Each call will background a
// listener (e.g. gRPC, HTTP) and a graceful shutdown procedure that's
// called when the input context is cancelled. An error is only
// returned upon initialization.

// RunRPC runs the gRPC endpoint.
func (s *Server) RunRPC(ctx context.Context, wg *sync.WaitGroup) error {
	l, err := net.Listen("tcp", s.GRPCListen)
	if err != nil {
		return err
	}

	srvr := grpc.NewServer(
		grpc.UnaryInterceptor(grpctrace.UnaryServerInterceptor(grpctrace.WithServiceName("leaseman"))),
		grpc.StreamInterceptor(grpctrace.StreamServerInterceptor(grpctrace.WithServiceName("leaseman"))),
	)
	pb.RegisterLeaseServiceServer(srvr, s)

	// Shutdown procedure.
	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down gRPC listener")

		srvr.GracefulStop()

		if err := l.Close(); err != nil {
			zap.L().Error("gRPC listener close failed", zap.Error(err))
		}

		wg.Done()
	}()

	// Background the listener.
	go func() {
		zap.L().Info("gRPC up", zap.String("listen", s.GRPCListen))
		if err := srvr.Serve(l); err != nil {
			zap.L().Error("gRPC serve failed", zap.Error(err))
		}
	}()

	return nil
}

// RunHTTP runs the HTTP endpoint: the gateway for the unary lease APIs
// plus the prometheus metrics handler.
func (s *Server) RunHTTP(ctx context.Context, wg *sync.WaitGroup) error {
	gw := runtime.NewServeMux()
	opts := []grpc.DialOption{grpc.WithInsecure()}

	err := pb.RegisterLeaseServiceHandlerFromEndpoint(ctx, gw, s.GRPCListen, opts)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", gw)

	srvr := &http.Server{
		Addr:    s.HTTPListen,
		Handler: mux,
	}

	// Shutdown procedure.
	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down HTTP listener")

		if err := srvr.Shutdown(ctx); err != nil {
			zap.L().Error("HTTP shutdown failed", zap.Error(err))
		}

		wg.Done()
	}()

	// Background the listener.
	go func() {
		zap.L().Info("HTTP up", zap.String("listen", s.HTTPListen))
		if err := srvr.ListenAndServe(); err != http.ErrServerClosed {
			zap.L().Error("HTTP serve failed", zap.Error(err))
		}
	}()

	return nil
}

// JoinCluster enters this instance into the authority election. A
// background resignation procedure is called when the context is
// cancelled.
func (s *Server) JoinCluster(ctx context.Context, wg *sync.WaitGroup) error {
	if err := s.Authority.Campaign(ctx); err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		if err := s.Authority.Resign(context.Background()); err != nil {
			zap.L().Error("authority resignation failed", zap.Error(err))
		}
		wg.Done()
	}()

	return nil
}
