package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

// leaseClient dials the leaseman gRPC endpoint named by the
// persistent --addr flag. The caller owns the returned conn.
func leaseClient(cmd *cobra.Command) (pb.LeaseServiceClient, *grpc.ClientConn) {
	addr, _ := cmd.Flags().GetString("addr")

	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return pb.NewLeaseServiceClient(conn), conn
}

// requestContext returns a context bound to the --timeout flag.
func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return context.WithTimeout(context.Background(), timeout)
}

// requestHeader builds a RequestHeader with a fresh request ID.
func requestHeader(cmd *cobra.Command) *pb.RequestHeader {
	clientName, _ := cmd.Flags().GetString("client-name")

	return &pb.RequestHeader{
		ClientName:       clientName,
		RequestId:        uuid.New().String(),
		RequestTimestamp: time.Now().UnixNano(),
	}
}

func userName(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("user-name")
	if name == "" {
		name = os.Getenv("USER")
	}

	return name
}

func exitOnStatus(status pb.LeaseStatus) {
	if status != pb.LeaseStatus_LEASE_STATUS_OK {
		fmt.Printf("request refused: %s\n", status)
		os.Exit(1)
	}
}

func printLease(l *pb.Lease) {
	fmt.Printf("lease: resource=%s epoch=%d sequence=%d\n", l.Resource, l.Epoch, l.Sequence)
}
