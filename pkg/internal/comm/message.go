package comm

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/vmihailenco/msgpack/v5"
)

// maxFrameSize bounds a control frame; anything larger is a corrupt peer.
const maxFrameSize = 1 << 16

// HostSnapshot captures the state of the aborting host. It rides along in
// the abort frame so the surviving master can say where and under what
// conditions the computation died.
type HostSnapshot struct {
	Hostname       string  `msgpack:"hostname"`
	PID            int     `msgpack:"pid"`
	NumCPU         int     `msgpack:"num_cpu"`
	GoVersion      string  `msgpack:"go_version"`
	MemUsedPercent float64 `msgpack:"mem_used_percent"`
	MemTotalBytes  uint64  `msgpack:"mem_total_bytes"`
}

// abortFrame is the only control-plane message: some rank is terminating the
// computation. Reason is free text naming what triggered the termination,
// typically the title of the fatal diagnostic.
type abortFrame struct {
	Rank   int          `msgpack:"rank"`
	Code   int          `msgpack:"code"`
	Reason string       `msgpack:"reason"`
	Host   HostSnapshot `msgpack:"host"`
}

func newAbortFrame(rank, code int, reason string) abortFrame {
	return abortFrame{Rank: rank, Code: code, Reason: reason, Host: TakeHostSnapshot()}
}

// TakeHostSnapshot collects host vitals. Metric collection failures are
// tolerated; the snapshot ships with whatever could be gathered.
func TakeHostSnapshot() HostSnapshot {
	snap := HostSnapshot{
		PID:       os.Getpid(),
		GoVersion: runtime.Version(),
	}
	if hostname, err := os.Hostname(); err == nil {
		snap.Hostname = hostname
	}
	if n, err := cpu.Counts(true); err == nil {
		snap.NumCPU = n
	}
	if stats, err := mem.VirtualMemory(); err == nil {
		snap.MemUsedPercent = stats.UsedPercent
		snap.MemTotalBytes = stats.Total
	}
	return snap
}

// writeFrame sends a length-prefixed msgpack frame.
func writeFrame(w io.Writer, frame abortFrame) error {
	payload, err := msgpack.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to encode control frame: %w", err)
	}
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// readFrame receives a length-prefixed msgpack frame.
func readFrame(r io.Reader) (*abortFrame, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(prefix[:])
	if n == 0 || n > maxFrameSize {
		return nil, fmt.Errorf("invalid control frame length %d", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	var frame abortFrame
	if err := msgpack.Unmarshal(payload, &frame); err != nil {
		return nil, fmt.Errorf("failed to decode control frame: %w", err)
	}
	return &frame, nil
}
