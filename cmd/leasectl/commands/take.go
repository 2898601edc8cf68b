package commands

import (
	"fmt"
	"os"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"

	"github.com/spf13/cobra"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take over a lease regardless of the current holder",
	Run:   take,
}

func init() {
	rootCmd.AddCommand(takeCmd)

	takeCmd.Flags().String("resource", "", "Resource to take")
	takeCmd.MarkFlagRequired("resource")
}

func take(cmd *cobra.Command, _ []string) {
	c, conn := leaseClient(cmd)
	defer conn.Close()

	ctx, cancel := requestContext(cmd)
	defer cancel()

	resource, _ := cmd.Flags().GetString("resource")

	resp, err := c.TakeLease(ctx, &pb.TakeLeaseRequest{
		Header:   requestHeader(cmd),
		Resource: resource,
		UserName: userName(cmd),
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	exitOnStatus(resp.Status)
	printLease(resp.Lease)
}
