package ethash

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestCalcDifficultyNeverBelowMinimum(t *testing.T) {
	parent := *uint256.NewInt(minimumDifficulty)
	for _, fork := range []Fork{Frontier, Homestead, Byzantium, Constantinople, MuirGlacier} {
		got := CalcDifficulty(fork, 1000000, 0, parent, 1, emptyUncleHash)
		assert.Falsef(t, got.LtUint64(minimumDifficulty), "fork %d: CalcDifficulty = %s, want >= minimumDifficulty", fork, got.String())
	}
}

func TestCalcDifficultyIncreasesForFastBlocks(t *testing.T) {
	parent := *uint256.NewInt(1_000_000_000)
	slow := CalcDifficulty(Byzantium, 100, 0, parent, 1_000_000, emptyUncleHash)
	fast := CalcDifficulty(Byzantium, 5, 0, parent, 1_000_000, emptyUncleHash)
	assert.Greater(t, fast.Cmp(&slow), 0, "a faster block interval should yield a higher difficulty")
}

func TestCalcDifficultyUncleHashAffectsByzantium(t *testing.T) {
	parent := *uint256.NewInt(1_000_000_000)
	var withUncles [32]byte
	withUncles[0] = 0xaa

	noUncles := CalcDifficulty(Byzantium, 10, 0, parent, 1_000_000, emptyUncleHash)
	hasUncles := CalcDifficulty(Byzantium, 10, 0, parent, 1_000_000, withUncles)
	assert.NotEqual(t, noUncles.Cmp(&hasUncles), 0, "presence of uncles should change the Byzantium difficulty adjustment")
}

func TestCalcDifficultyIceAgeBomb(t *testing.T) {
	parent := *uint256.NewInt(1_000_000_000)
	noBomb := CalcDifficulty(Frontier, 1000, 0, parent, 90_000, emptyUncleHash)
	withBomb := CalcDifficulty(Frontier, 1000, 0, parent, 5_000_000, emptyUncleHash)
	assert.Greater(t, withBomb.Cmp(&noBomb), 0, "the ice-age exponential factor should dominate at a high parent number")
}
