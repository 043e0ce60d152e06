package keccak

import "golang.org/x/sys/cpu"

// Permute1600 and Permute800 are resolved once at init time to whichever
// variant the reference implementation would select for this CPU: the
// unrolled form on machines with BMI2 (where the extra register pressure
// the reference's unrolling is tuned for actually pays off), the generic
// loop everywhere else. Both are pure Go and produce identical output;
// this only picks the faster of two already-verified implementations.
var (
	Permute1600 func(st *[25]uint64)
	Permute800  func(st *[25]uint32)
)

func init() {
	if cpu.X86.HasBMI2 {
		Permute1600 = permute1600Unrolled
		Permute800 = permute800Unrolled
	} else {
		Permute1600 = permute1600Generic
		Permute800 = permute800Generic
	}
}
