package ethash

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	ethashrules "github.com/erigontech/erigon-pow/execution/protocol/rules/ethash"
)

func TestSealHashDeterministicAndSensitive(t *testing.T) {
	h := &Header{Number: 1, GasLimit: 8000000, Time: 1000}
	a := h.SealHash()
	b := h.SealHash()
	require.Equal(t, a, b, "SealHash must be deterministic for the same header")

	h2 := *h
	h2.GasUsed = 21000
	require.NotEqual(t, a, h2.SealHash(), "changing GasUsed should change SealHash")

	h3 := *h
	h3.Extra = []byte("foo")
	require.NotEqual(t, a, h3.SealHash(), "changing Extra should change SealHash")
}

func TestVerifySealRejectsNonPositiveDifficulty(t *testing.T) {
	e := &Engine{}
	header := &Header{Difficulty: uint256.NewInt(0)}
	require.ErrorIs(t, e.VerifySeal(header), errInvalidDifficulty)

	header.Difficulty = nil
	require.ErrorIs(t, e.VerifySeal(header), errInvalidDifficulty)
}

func TestVerifySealChecksParentDerivedDifficulty(t *testing.T) {
	e := NewEngine(1, false)
	defer e.Close()

	parent := &ParentInfo{
		Time:       1000,
		Difficulty: *uint256.NewInt(1_000_000_000),
		Number:     0,
		UncleHash:  [32]byte{},
	}
	want := ethashrules.CalcDifficulty(ethashrules.Byzantium, 1010, parent.Time, parent.Difficulty, parent.Number, parent.UncleHash)

	header := &Header{
		Number:     parent.Number + 1,
		Time:       1010,
		Difficulty: &want,
		Parent:     parent,
		Fork:       ethashrules.Byzantium,
	}
	// With a correctly-derived difficulty, VerifySeal gets past the
	// difficulty check and fails on the seal instead (the zero MixDigest
	// does not match the computed mix hash).
	require.NotErrorIs(t, e.VerifySeal(header), errWrongDifficulty)

	wrong := new(uint256.Int).AddUint64(&want, 1)
	header.Difficulty = wrong
	require.ErrorIs(t, e.VerifySeal(header), errWrongDifficulty)
}
