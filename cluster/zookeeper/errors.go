package zookeeper

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCandidate is returned when an operation requires a
	// registered candidacy and none exists.
	ErrNotCandidate = errors.New("instance has not entered the election")
	// ErrInvalidSeqNode is returned when sequential znodes are being
	// parsed for a trailing integer ID, but one isn't found.
	ErrInvalidSeqNode = errors.New("znode doesn't appear to be a sequential type")
)

// ErrCampaignFailed is a general candidacy registration failure.
type ErrCampaignFailed struct {
	message string
}

func (e ErrCampaignFailed) Error() string {
	return fmt.Sprintf("attempt to enter election failed: %s", e.message)
}
