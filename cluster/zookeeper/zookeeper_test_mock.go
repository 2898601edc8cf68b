package zookeeper

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-zookeeper/zk"
)

type mockZooKeeperClient struct {
	mu                sync.Mutex
	znodeNameTemplate string
	candidates        []string
	nextID            int32
	path              string
}

func newMockElector() *Elector {
	return &Elector{
		c: &mockZooKeeperClient{
			znodeNameTemplate: "_c_979cb11f40bb3dbc6908edeaac8f2de1-candidate-00000000",
			candidates:        []string{},
			nextID:            0,
			path:              "/election",
		},
		Path: "/election",
	}
}

func (m *mockZooKeeperClient) Children(s string) ([]string, *zk.Stat, error) {
	var names []string
	for _, c := range m.candidates {
		names = append(names, strings.Trim(c, m.path))
	}
	return names, nil, nil
}

func (m *mockZooKeeperClient) Create(s string, b []byte, i int32, a []zk.ACL) (string, error) {
	return "", nil
}

func (m *mockZooKeeperClient) CreateProtectedEphemeralSequential(s string, b []byte, a []zk.ACL) (string, error) {
	// Mimic the sequential znode naming scheme. If s == "/election/candidate-",
	// we want "/election/_c_979cb11f40bb3dbc6908edeaac8f2de1-candidate-000000001".
	parts := strings.Split(s, "/")
	fakeZnode := fmt.Sprintf("/%s/%s%d", parts[1], m.znodeNameTemplate, atomic.AddInt32(&m.nextID, 1))
	// Store the fake candidate name.
	m.candidates = append(m.candidates, fakeZnode)

	return fakeZnode, nil
}

func (m *mockZooKeeperClient) Delete(s string, i int32) error {
	var c []string
	for _, e := range m.candidates {
		if e != s {
			c = append(c, e)
		}
	}
	m.candidates = c

	return nil
}

func (m *mockZooKeeperClient) Get(s string) ([]byte, *zk.Stat, error) {
	return nil, &zk.Stat{Version: 1}, nil
}

func (m *mockZooKeeperClient) GetW(s string) ([]byte, *zk.Stat, <-chan zk.Event, error) {
	return nil, nil, nil, nil
}
