package comm

import (
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// ClusterOption configures a Cluster communicator.
type ClusterOption func(*Cluster)

// Cluster is the multi-process communicator. Rank 0 is the master; it listens
// on the control address and every other rank dials in. An abort raised on
// any rank is forwarded to the master and rebroadcast, so the whole process
// group exits together instead of leaving siblings hung in collective
// operations.
type Cluster struct {
	rank        int
	size        int
	controlAddr string
	exit        func(int)
	dialRetry   time.Duration
	dialWindow  time.Duration

	mu      sync.Mutex
	ln      net.Listener
	conns   []net.Conn // master: accepted worker connections
	conn    net.Conn   // worker: connection to the master
	onAbort []func()

	abortOnce sync.Once
}

// NewCluster constructs a communicator for an SPMD process group. Rank, size,
// and the control address default to the launcher environment. With a size of
// one or no control address the communicator degrades to local semantics.
func NewCluster(options ...ClusterOption) (*Cluster, error) {
	c := &Cluster{
		rank:        RankFromEnv(),
		size:        SizeFromEnv(),
		controlAddr: ControlAddrFromEnv(),
		exit:        os.Exit,
		dialRetry:   250 * time.Millisecond,
		dialWindow:  10 * time.Second,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.size <= 1 || c.controlAddr == "" {
		return c, nil
	}

	if c.rank == 0 {
		ln, err := net.Listen("tcp", c.controlAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to listen on control address %s: %w", c.controlAddr, err)
		}
		c.ln = ln
		go c.serve()
		return c, nil
	}

	conn, err := c.dialMaster()
	if err != nil {
		return nil, err
	}
	c.conn = conn
	go c.awaitRemoteAbort(conn)
	return c, nil
}

// ClusterWithRank fixes the rank instead of reading the environment.
func ClusterWithRank(rank int) ClusterOption {
	return func(c *Cluster) { c.rank = rank }
}

// ClusterWithSize fixes the world size instead of reading the environment.
func ClusterWithSize(size int) ClusterOption {
	return func(c *Cluster) { c.size = size }
}

// ClusterWithControlAddr fixes the control-plane address.
func ClusterWithControlAddr(addr string) ClusterOption {
	return func(c *Cluster) { c.controlAddr = addr }
}

// ClusterWithExit overrides the process-exit hook. Tests use this to observe
// coordinated aborts without dying.
func ClusterWithExit(exit func(int)) ClusterOption {
	return func(c *Cluster) {
		if exit != nil {
			c.exit = exit
		}
	}
}

// Rank returns this process's rank.
func (c *Cluster) Rank() int { return c.rank }

// Size returns the number of cooperating processes.
func (c *Cluster) Size() int { return c.size }

// IsMaster reports whether this process is the designated master. Rank 0 is
// the master for every communicator; sub-communicator master selection is the
// launcher's concern, not replicated here.
func (c *Cluster) IsMaster(communicator int) bool { return c.rank == 0 }

// ControlAddr returns the address the master actually listens on, which may
// differ from the configured address when a ":0" port was requested.
func (c *Cluster) ControlAddr() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ln != nil {
		return c.ln.Addr().String()
	}
	return c.controlAddr
}

// OnAbort registers a hook run before the process exits on a coordinated
// abort, whether raised locally or received from a peer. Reporters register
// their sink flush here so remote aborts do not lose buffered diagnostics.
func (c *Cluster) OnAbort(hook func()) {
	if hook == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAbort = append(c.onAbort, hook)
}

// Abort terminates the whole process group with the given exit status. The
// triggering rank forwards an abort frame over the control plane; the master
// rebroadcasts it to every connected rank. Abort does not return.
func (c *Cluster) Abort(code int) {
	c.AbortWithReason(code, "")
}

// AbortWithReason is Abort with free text carried in the control frame
// naming what triggered the termination.
func (c *Cluster) AbortWithReason(code int, reason string) {
	c.abortOnce.Do(func() {
		frame := newAbortFrame(c.rank, code, reason)

		c.mu.Lock()
		if c.rank == 0 {
			for _, conn := range c.conns {
				_ = writeFrame(conn, frame)
			}
		} else if c.conn != nil {
			_ = writeFrame(c.conn, frame)
			// Give the frame a moment to reach the master before dying.
			time.Sleep(100 * time.Millisecond)
		}
		c.mu.Unlock()

		c.runAbortHooks()
		_ = c.Close()
		c.exit(code)
	})
}

// Close releases the control-plane resources.
func (c *Cluster) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var first error
	if c.ln != nil {
		if err := c.ln.Close(); err != nil && first == nil {
			first = err
		}
		c.ln = nil
	}
	for _, conn := range c.conns {
		if err := conn.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.conns = nil
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && first == nil {
			first = err
		}
		c.conn = nil
	}
	return first
}

// serve accepts worker connections on the master and watches each for abort
// frames.
func (c *Cluster) serve() {
	for {
		c.mu.Lock()
		ln := c.ln
		c.mu.Unlock()
		if ln == nil {
			return
		}
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		c.mu.Lock()
		c.conns = append(c.conns, conn)
		c.mu.Unlock()
		go c.relayRemoteAbort(conn)
	}
}

// relayRemoteAbort runs on the master for each worker connection: a received
// abort frame is rebroadcast to every other rank before the master exits.
func (c *Cluster) relayRemoteAbort(conn net.Conn) {
	frame, err := readFrame(conn)
	if err != nil {
		return
	}
	c.abortOnce.Do(func() {
		c.mu.Lock()
		for _, peer := range c.conns {
			if peer != conn {
				_ = writeFrame(peer, *frame)
			}
		}
		c.mu.Unlock()

		c.runAbortHooks()
		_ = c.Close()
		c.exit(frame.Code)
	})
}

// awaitRemoteAbort runs on workers: a frame from the master means some rank
// aborted and this process must exit with the same status.
func (c *Cluster) awaitRemoteAbort(conn net.Conn) {
	frame, err := readFrame(conn)
	if err != nil {
		return
	}
	c.abortOnce.Do(func() {
		c.runAbortHooks()
		_ = c.Close()
		c.exit(frame.Code)
	})
}

func (c *Cluster) runAbortHooks() {
	c.mu.Lock()
	hooks := make([]func(), len(c.onAbort))
	copy(hooks, c.onAbort)
	c.mu.Unlock()
	for _, hook := range hooks {
		hook()
	}
}

// dialMaster retries for the dial window so workers tolerate the master's
// listener coming up late.
func (c *Cluster) dialMaster() (net.Conn, error) {
	deadline := time.Now().Add(c.dialWindow)
	var lastErr error
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", c.controlAddr, c.dialRetry)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		time.Sleep(c.dialRetry)
	}
	return nil, fmt.Errorf("rank %d failed to reach control address %s: %w", c.rank, c.controlAddr, lastErr)
}

var _ types.Communicator = (*Cluster)(nil)
