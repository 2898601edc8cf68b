package zookeeper

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"
)

// ZooKeeperClient is the subset of the zk client used by the Elector.
type ZooKeeperClient interface {
	Children(string) ([]string, *zk.Stat, error)
	Create(string, []byte, int32, []zk.ACL) (string, error)
	CreateProtectedEphemeralSequential(string, []byte, []zk.ACL) (string, error)
	Delete(string, int32) error
	Get(string) ([]byte, *zk.Stat, error)
	GetW(string) ([]byte, *zk.Stat, <-chan zk.Event, error)
}

// Elector implements cluster.Authority over ZooKeeper: every candidate
// instance registers an ephemeral sequential znode under Path, and the
// instance holding the lowest ID is authoritative. A candidate that
// dies takes its znode with it, promoting the next ID.
type Elector struct {
	c    ZooKeeperClient
	Path string

	mu    sync.RWMutex
	znode string
}

// ElectorConfig holds Elector configurations.
type ElectorConfig struct {
	Address string
	Path    string
}

// NewElector initializes an Elector connected to ZooKeeper.
func NewElector(c ElectorConfig) (*Elector, error) {
	var e = &Elector{Path: c.Path}
	var err error

	e.c, _, err = zk.Connect([]string{c.Address}, 10*time.Second, zk.WithLogInfo(false))
	if err != nil {
		return nil, err
	}

	return e, e.init()
}

// init creates the election path.
func (e *Elector) init() error {
	// Get an incremental path ending at the destination election path.
	// If for example we're provided "/path/to/election", we want the
	// following: ["/path", "/path/to", "/path/to/election"].
	nodes := strings.Split(strings.Trim(e.Path, "/"), "/")

	// Create each node.
	for i := range nodes {
		nodePath := fmt.Sprintf("/%s", strings.Join(nodes[:i+1], "/"))
		if _, err := e.c.Create(nodePath, nil, 0, zk.WorldACL(31)); err != nil && err != zk.ErrNodeExists {
			return err
		}
	}

	return nil
}

// idFromZnode parses the trailing sequence integer from a sequential
// znode name.
func idFromZnode(node string) (int, error) {
	parts := strings.Split(node, "-")
	if len(parts) < 2 {
		return 0, ErrInvalidSeqNode
	}

	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, ErrInvalidSeqNode
	}

	return id, nil
}
