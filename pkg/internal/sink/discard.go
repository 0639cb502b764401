package sink

import "github.com/joeydtaylor/foghorn/pkg/internal/types"

// Discard is the distinguished no-op stream handed to suppressed call sites:
// non-master processes and explicitly gated-off reports. Every append is
// silently dropped.
var Discard types.Stream = discardStream{}

type discardStream struct{}

func (d discardStream) Print(args ...interface{}) types.Stream { return d }

func (d discardStream) Printf(format string, args ...interface{}) types.Stream { return d }

func (d discardStream) Println(args ...interface{}) types.Stream { return d }
