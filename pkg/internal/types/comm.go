package types

// WorldCommunicator is the communicator identifier spanning every process in
// the computation.
const WorldCommunicator = 0

// Communicator abstracts the parallel communication layer: rank discovery,
// master-rank selection, and coordinated termination. The diagnostics layer
// performs no communication of its own beyond what this interface provides.
type Communicator interface {
	// Rank returns this process's rank within the world communicator.
	Rank() int
	// Size returns the number of cooperating processes.
	Size() int
	// IsMaster reports whether this process is the designated master for the
	// given communicator, i.e. the only process that may physically print.
	IsMaster(communicator int) bool
	// Abort terminates the whole computation with the given exit status. All
	// cooperating processes exit, not just the caller. Abort does not return.
	Abort(code int)
	// Close releases any control-plane resources held by the communicator.
	Close() error
}
