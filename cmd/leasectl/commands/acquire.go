package commands

import (
	"fmt"
	"os"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"

	"github.com/spf13/cobra"
)

var acquireCmd = &cobra.Command{
	Use:   "acquire",
	Short: "Acquire a lease on an unclaimed resource",
	Run:   acquire,
}

func init() {
	rootCmd.AddCommand(acquireCmd)

	acquireCmd.Flags().String("resource", "", "Resource to acquire")
	acquireCmd.MarkFlagRequired("resource")
}

func acquire(cmd *cobra.Command, _ []string) {
	c, conn := leaseClient(cmd)
	defer conn.Close()

	ctx, cancel := requestContext(cmd)
	defer cancel()

	resource, _ := cmd.Flags().GetString("resource")

	resp, err := c.AcquireLease(ctx, &pb.AcquireLeaseRequest{
		Header:   requestHeader(cmd),
		Resource: resource,
		UserName: userName(cmd),
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if resp.Status == pb.LeaseStatus_LEASE_STATUS_ALREADY_CLAIMED && resp.Owner != nil {
		fmt.Printf("request refused: %s (held by %s)\n", resp.Status, resp.Owner.ClientName)
		os.Exit(1)
	}

	exitOnStatus(resp.Status)
	printLease(resp.Lease)
}
