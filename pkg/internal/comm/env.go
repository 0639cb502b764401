package comm

import (
	"os"
	"strconv"
)

// Environment variables set by the parrun launcher.
const (
	EnvRank    = "FOGHORN_RANK"
	EnvSize    = "FOGHORN_SIZE"
	EnvControl = "FOGHORN_CONTROL"
)

// rankEnvVars lists the launcher variables consulted for rank discovery, in
// priority order. The non-Foghorn entries cover programs started under common
// MPI and batch launchers.
var rankEnvVars = []string{EnvRank, "OMPI_COMM_WORLD_RANK", "PMI_RANK", "SLURM_PROCID"}

var sizeEnvVars = []string{EnvSize, "OMPI_COMM_WORLD_SIZE", "PMI_SIZE", "SLURM_NTASKS"}

// RankFromEnv returns the process rank advertised by the launcher, or 0 when
// none is set.
func RankFromEnv() int {
	return intFromEnv(rankEnvVars, 0)
}

// SizeFromEnv returns the world size advertised by the launcher, or 1 when
// none is set.
func SizeFromEnv() int {
	return intFromEnv(sizeEnvVars, 1)
}

// ControlAddrFromEnv returns the control-plane address advertised by the
// launcher, or "" when running outside one.
func ControlAddrFromEnv() string {
	return os.Getenv(EnvControl)
}

func intFromEnv(vars []string, def int) int {
	for _, v := range vars {
		raw := os.Getenv(v)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		return n
	}
	return def
}
