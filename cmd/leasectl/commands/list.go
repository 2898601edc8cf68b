package commands

import (
	"fmt"
	"os"
	"time"

	pb "github.com/fleetrobotics/lease-kit/leaseman/protos"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all resources and their lease state",
	Run:   list,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, _ []string) {
	c, conn := leaseClient(cmd)
	defer conn.Close()

	ctx, cancel := requestContext(cmd)
	defer cancel()

	resp, err := c.ListLeases(ctx, &pb.ListLeasesRequest{Header: requestHeader(cmd)})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	exitOnStatus(resp.Status)

	for _, r := range resp.Resources {
		if r.Lease == nil {
			fmt.Printf("%s: unclaimed\n", r.Resource)
			continue
		}

		retained := time.Unix(0, r.LastRetainTimestamp).UTC().Format(time.RFC3339)
		fmt.Printf("%s: epoch=%d holder=%s user=%s last_retain=%s\n",
			r.Resource, r.Lease.Epoch, r.Owner.ClientName, r.Owner.UserName, retained)
	}
}
