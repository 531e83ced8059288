package instance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rmnkhv/instance"
	"github.com/stretchr/testify/require"
)

// writeInstance writes content to a temp file and returns its path.
func writeInstance(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "inst.dat")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// sigmaScenarioInstance builds the N=3, M=1, K=1 instance used by the σ
// worked example in spec §8 scenario 1: links[0][0] = [2,0].
const sigmaScenarioInstance = `c generated for testing
p rMNK
0.0 1 3 1
p links
2 0
0 1
1 2
p tables
10 20 30 40
1 2 3 4
100 200 300 400
`

func TestLoad_SigmaScenario_EvaluatesCorrectly(t *testing.T) {
	path := writeInstance(t, sigmaScenarioInstance)
	inst, err := instance.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, inst.M())
	require.Equal(t, 3, inst.N())
	require.Equal(t, 1, inst.K())

	y := inst.Evaluate([]bool{true, false, true})
	require.Len(t, y, 1)
	require.InDelta(t, 114.0, y[0], 1e-9) // (40 + 2 + 300) / 3
}

// irrelevantBitInstance is N=4, M=1, K=1 where bit 3 never appears in any
// links[0][i]; flipping it must leave the objective unchanged (spec §8).
const irrelevantBitInstance = `p rMNK
0.0 1 4 1
p links
0 1
1 2
2 0
0 2
p tables
0 1 2 3
10 11 12 13
20 21 22 23
30 31 32 33
`

func TestLoad_IrrelevantBit_LeavesObjectiveUnchanged(t *testing.T) {
	path := writeInstance(t, irrelevantBitInstance)
	inst, err := instance.Load(path)
	require.NoError(t, err)

	a := inst.Evaluate([]bool{false, false, false, false})
	b := inst.Evaluate([]bool{false, false, false, true})
	require.Equal(t, a, b)
}

func TestLoad_AllZeroVsAllOneDistinct(t *testing.T) {
	path := writeInstance(t, sigmaScenarioInstance)
	inst, err := instance.Load(path)
	require.NoError(t, err)

	zero := inst.Evaluate([]bool{false, false, false})
	one := inst.Evaluate([]bool{true, true, true})
	require.NotEqual(t, zero, one)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
}

func TestLoad_MissingHeader(t *testing.T) {
	path := writeInstance(t, "0.0 1 3 1\np links\n2 0\n0 1\n1 2\np tables\n10 20 30 40\n1 2 3 4\n100 200 300 400\n")
	_, err := instance.Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, instance.ErrMalformedInstance))
}

func TestLoad_NonNumericToken(t *testing.T) {
	path := writeInstance(t, "p rMNK\nzzz 1 3 1\np links\n2 0\n0 1\n1 2\np tables\n10 20 30 40\n1 2 3 4\n100 200 300 400\n")
	_, err := instance.Load(path)
	require.True(t, errors.Is(err, instance.ErrMalformedInstance))
}

func TestLoad_ShortRead(t *testing.T) {
	path := writeInstance(t, "p rMNK\n0.0 1 3 1\np links\n2 0\n0 1\np tables\n10 20 30 40\n1 2 3 4\n100 200 300 400\n")
	_, err := instance.Load(path)
	require.True(t, errors.Is(err, instance.ErrMalformedInstance))
}

func TestLoad_LinkIndexOutOfRange(t *testing.T) {
	path := writeInstance(t, "p rMNK\n0.0 1 3 1\np links\n5 0\n0 1\n1 2\np tables\n10 20 30 40\n1 2 3 4\n100 200 300 400\n")
	_, err := instance.Load(path)
	require.True(t, errors.Is(err, instance.ErrMalformedInstance))
}

func TestLoad_KOutOfRange(t *testing.T) {
	path := writeInstance(t, "p rMNK\n0.0 1 3 3\np links\np tables\n")
	_, err := instance.Load(path)
	require.True(t, errors.Is(err, instance.ErrMalformedInstance))
}

func TestLoad_ScalarBoundary_N1M1K0(t *testing.T) {
	path := writeInstance(t, "p rMNK\n0.0 1 1 0\np links\n0\np tables\n1.5\n2.5\n")
	inst, err := instance.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, inst.N())
	require.Equal(t, 1, inst.M())
	require.Equal(t, 0, inst.K())
	require.InDelta(t, 1.5, inst.Evaluate([]bool{false})[0], 1e-9)
	require.InDelta(t, 2.5, inst.Evaluate([]bool{true})[0], 1e-9)
}
