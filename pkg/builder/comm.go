package builder

import (
	"github.com/joeydtaylor/foghorn/pkg/internal/comm"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

type Communicator = types.Communicator

// Launcher environment variables consumed by cluster communicators and set
// by parrun.
const (
	EnvRank    = comm.EnvRank
	EnvSize    = comm.EnvSize
	EnvControl = comm.EnvControl
)

// NewLocalComm constructs the single-process communicator.
func NewLocalComm(options ...comm.LocalOption) Communicator {
	return comm.NewLocal(options...)
}

// NewClusterComm constructs a communicator for an SPMD process group,
// defaulting rank, size, and control address from the launcher environment.
func NewClusterComm(options ...comm.ClusterOption) (Communicator, error) {
	return comm.NewCluster(options...)
}

// ClusterWithRank fixes the rank instead of reading the environment.
func ClusterWithRank(rank int) comm.ClusterOption {
	return comm.ClusterWithRank(rank)
}

// ClusterWithSize fixes the world size instead of reading the environment.
func ClusterWithSize(size int) comm.ClusterOption {
	return comm.ClusterWithSize(size)
}

// ClusterWithControlAddr fixes the control-plane address.
func ClusterWithControlAddr(addr string) comm.ClusterOption {
	return comm.ClusterWithControlAddr(addr)
}
