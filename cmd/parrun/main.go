// parrun launches N ranks of a command SPMD-style: every rank runs the same
// program with FOGHORN_RANK, FOGHORN_SIZE, and FOGHORN_CONTROL set, sharing
// the parent's stdout and stderr. When any rank exits non-zero the remaining
// ranks are killed, the scheduler half of the coordinated-abort contract.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"sync"

	"github.com/joeydtaylor/foghorn/pkg/builder"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		ranks       int
		controlAddr string
	)

	cmd := &cobra.Command{
		Use:   "parrun [flags] -- command [args...]",
		Short: "Run a command as an SPMD process group with Foghorn rank wiring",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ranks < 1 {
				return fmt.Errorf("rank count must be at least 1, got %d", ranks)
			}
			addr, err := resolveControlAddr(controlAddr, ranks)
			if err != nil {
				return err
			}
			code, err := launch(cmd.Context(), ranks, addr, args)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVarP(&ranks, "np", "n", 2, "number of ranks to launch")
	cmd.Flags().StringVar(&controlAddr, "control", "", "control-plane address (default: a free local port)")
	return cmd
}

// resolveControlAddr picks a free local port when none was requested. The
// listener is closed again immediately; rank 0 re-binds the address itself.
func resolveControlAddr(requested string, ranks int) (string, error) {
	if ranks == 1 {
		return "", nil
	}
	if requested != "" {
		return requested, nil
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("failed to reserve a control port: %w", err)
	}
	addr := ln.Addr().String()
	if err := ln.Close(); err != nil {
		return "", err
	}
	return addr, nil
}

// launch starts every rank and waits. The first non-zero exit cancels the
// group context, which kills the surviving ranks.
func launch(ctx context.Context, ranks int, controlAddr string, argv []string) (int, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		once     sync.Once
		exitCode int
	)

	for rank := 0; rank < ranks; rank++ {
		rank := rank
		g.Go(func() error {
			c := exec.CommandContext(ctx, argv[0], argv[1:]...)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			c.Env = append(os.Environ(),
				fmt.Sprintf("%s=%d", builder.EnvRank, rank),
				fmt.Sprintf("%s=%d", builder.EnvSize, ranks),
				fmt.Sprintf("%s=%s", builder.EnvControl, controlAddr),
			)

			err := c.Run()
			if err == nil {
				return nil
			}
			if exitErr, ok := err.(*exec.ExitError); ok {
				once.Do(func() { exitCode = exitErr.ExitCode() })
				return fmt.Errorf("rank %d exited with status %d", rank, exitErr.ExitCode())
			}
			once.Do(func() { exitCode = 1 })
			return fmt.Errorf("rank %d: %w", rank, err)
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode, nil
	}
	return 0, nil
}
