package heuristics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIBEAConfig_ValidateDefaults(t *testing.T) {
	require.NoError(t, DefaultIBEAConfig().validate())
}

func TestIBEAConfig_RejectsBadTournamentK(t *testing.T) {
	cfg := DefaultIBEAConfig()
	cfg.TournamentK = 0
	require.ErrorIs(t, cfg.validate(), ErrInvalidTournamentK)

	cfg.TournamentK = cfg.PopSize + 1
	require.ErrorIs(t, cfg.validate(), ErrInvalidTournamentK)
}

func TestIBEAConfig_RejectsBadProbabilities(t *testing.T) {
	cfg := DefaultIBEAConfig()
	cfg.PC = 1.5
	require.ErrorIs(t, cfg.validate(), ErrInvalidProbability)

	cfg = DefaultIBEAConfig()
	cfg.PM = -0.1
	require.ErrorIs(t, cfg.validate(), ErrInvalidProbability)
}

func TestIBEAConfig_RejectsNPointWithoutPoints(t *testing.T) {
	cfg := DefaultIBEAConfig()
	cfg.Crossover = NPointCrossover
	cfg.NPoints = 0
	require.ErrorIs(t, cfg.validate(), ErrInvalidNPoints)
}

func TestGSEMOConfig_ValidateDefaults(t *testing.T) {
	require.NoError(t, DefaultGSEMOConfig().validate())
}

func TestPLSConfig_ValidateDefaults(t *testing.T) {
	require.NoError(t, DefaultPLSConfig().validate())
}
