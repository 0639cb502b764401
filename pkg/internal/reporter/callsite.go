package reporter

import (
	"path/filepath"
	"runtime"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// Here captures the caller's function, file, and line so call sites carry
// accurate source context without manual bookkeeping.
func Here() types.CallSite {
	return callerSite(2)
}

// callerSite walks skip frames up the stack. File paths are trimmed to their
// base name; full module paths add noise without aiding debugging.
func callerSite(skip int) types.CallSite {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return types.CallSite{}
	}
	site := types.CallSite{
		File: filepath.Base(file),
		Line: line,
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = fn.Name()
	}
	return site
}
