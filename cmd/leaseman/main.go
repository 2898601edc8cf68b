package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/jamiealquiza/envy"
	"go.uber.org/zap"

	"github.com/fleetrobotics/lease-kit/cluster"
	zkcluster "github.com/fleetrobotics/lease-kit/cluster/zookeeper"
	"github.com/fleetrobotics/lease-kit/leaseman/server"
	"github.com/fleetrobotics/lease-kit/leasetable"
)

func main() {
	serverConfig := server.Config{}

	flag.StringVar(&serverConfig.HTTPListen, "http-listen", "localhost:8080", "Server HTTP listen address")
	flag.StringVar(&serverConfig.GRPCListen, "grpc-listen", "localhost:8090", "Server gRPC listen address")
	flag.IntVar(&serverConfig.ReadReqRate, "read-rate-limit", 5, "Read request rate limit (reqs/s)")
	flag.IntVar(&serverConfig.WriteReqRate, "write-rate-limit", 5, "Write request rate limit (reqs/s)")
	resources := flag.String("resources", "body,arm:body", "Comma-delimited resource catalogue; entries are 'name' or 'name:parent'")
	cascadePolicy := flag.String("cascade-policy", "none", "Parent/child claim cascade policy (none, subtree)")
	retainTTL := flag.Duration("retain-ttl", 10*time.Second, "Time since last keep-alive after which a lease is revoked")
	sweepInterval := flag.Duration("sweep-interval", 2*time.Second, "Liveness monitor sweep interval")
	zkAddr := flag.String("zk-addr", "", "ZooKeeper connect string for authority election (standalone if unset)")
	zkPath := flag.String("zk-election-path", "/leaseman/election", "ZooKeeper authority election path")

	envy.Parse("LEASEMAN")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	zap.L().Info("leaseman running")

	// Build the resource catalogue and lease table.
	defs, err := parseResources(*resources)
	if err != nil {
		zap.L().Fatal("invalid resource catalogue", zap.Error(err))
	}

	reg, err := leasetable.NewRegistry(defs)
	if err != nil {
		zap.L().Fatal("invalid resource catalogue", zap.Error(err))
	}

	policy, err := leasetable.PolicyFromName(*cascadePolicy)
	if err != nil {
		zap.L().Fatal("invalid cascade policy", zap.Error(err))
	}

	table := leasetable.NewTable(reg, leasetable.Config{Policy: policy})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	// Join the authority election, or run standalone.
	var authority cluster.Authority = cluster.Standalone{}
	if *zkAddr != "" {
		elector, err := zkcluster.NewElector(zkcluster.ElectorConfig{
			Address: *zkAddr,
			Path:    *zkPath,
		})
		if err != nil {
			zap.L().Fatal("failed to dial ZooKeeper", zap.Error(err))
		}

		authority = elector
		zap.L().Info("joined authority election", zap.String("zk", *zkAddr), zap.String("path", *zkPath))
	}

	// Initialize Server.
	srvr, err := server.NewServer(table, authority, serverConfig)
	if err != nil {
		zap.L().Fatal("server init failed", zap.Error(err))
	}

	wg.Add(1)
	if err := srvr.JoinCluster(ctx, wg); err != nil {
		zap.L().Fatal("authority election failed", zap.Error(err))
	}

	// Start the liveness monitor.
	monitor := leasetable.NewMonitor(table, leasetable.MonitorConfig{
		Interval: *sweepInterval,
		TTL:      *retainTTL,
	})

	wg.Add(1)
	go monitor.Run(ctx, wg)

	// Start the gRPC listener.
	wg.Add(1)
	if err := srvr.RunRPC(ctx, wg); err != nil {
		zap.L().Fatal("gRPC listener failed", zap.Error(err))
	}

	// Start the HTTP listener.
	wg.Add(1)
	if err := srvr.RunHTTP(ctx, wg); err != nil {
		zap.L().Fatal("HTTP listener failed", zap.Error(err))
	}

	// Graceful shutdown on SIGINT.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		cancel()
	}()

	wg.Wait()
}

// parseResources parses the -resources flag: comma-delimited entries,
// each 'name' or 'name:parent'.
func parseResources(s string) ([]leasetable.ResourceDef, error) {
	var defs []leasetable.ResourceDef

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 2)
		def := leasetable.ResourceDef{Name: parts[0]}
		if len(parts) == 2 {
			def.Parent = parts[1]
		}

		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, errors.New("no resources configured")
	}

	return defs, nil
}
