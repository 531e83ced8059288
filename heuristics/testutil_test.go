package heuristics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmnkhv/instance"
)

// biObjectiveInstance builds a tiny N=3, M=2, K=0 instance where
// objective 0 rewards ones and objective 1 rewards zeros (each bit
// links only to itself), giving a known four-point Pareto front:
// {(0,1), (1/3,2/3), (2/3,1/3), (1,0)}. Every one of the eight decision
// vectors maps onto one of these points, so all eight are Pareto-optimal.
func biObjectiveInstance(t *testing.T) *instance.Instance {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bi.dat")
	content := "p rMNK\n0.0 2 3 0\np links\n0 0 1 1 2 2\np tables\n0 1 1 0 0 1 1 0 0 1 1 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	inst, err := instance.Load(path)
	require.NoError(t, err)
	return inst
}
