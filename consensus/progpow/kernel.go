// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package progpow

import (
	"fmt"
	"strings"
)

// KernelType selects the target shading language for GenerateKernel.
type KernelType int

const (
	KernelOpenCL KernelType = iota
	KernelCUDA
)

// GenerateKernel emits deterministic OpenCL/CUDA source text for one
// period's ProgPoW inner loop. It makes the same RNG draws, in the same
// order, as round(), but through its own copy of that loop rather than a
// shared code path; it is not itself part of the hash/verify path. Grounded on getKern /
// random_merge_src / random_math_src in the reference progpow.cpp, with
// the C++'s textual code-emission translated to Go string building.
func GenerateKernel(period uint64, kernel KernelType) string {
	roundRng := NewMixRNGState(period)
	var b strings.Builder

	if kernel == KernelCUDA {
		b.WriteString(fmt.Sprintf("// ProgPoW CUDA kernel, period %d\n", period))
	} else {
		b.WriteString(fmt.Sprintf("// ProgPoW OpenCL kernel, period %d\n", period))
	}

	for r := 0; r < kDagCount; r++ {
		fmt.Fprintf(&b, "// round %d\n", r)
		fmt.Fprintf(&b, "data_dag = get_dag_item((mix[lane_id(0)] %% %d));\n", 0)

		maxOps := kCacheCount
		if kMathCount > maxOps {
			maxOps = kMathCount
		}
		for i := 0; i < maxOps; i++ {
			if i < kCacheCount {
				src := roundRng.NextSrc()
				dst := roundRng.NextDst()
				sel := roundRng.Next()
				fmt.Fprintf(&b, "merge(mix[%d], l1_cache[mix[%d] %% %d], %d);\n", dst, src, kCacheWords, sel)
			}
			if i < kMathCount {
				srcRnd := roundRng.Next() % (kRegs * (kRegs - 1))
				src1 := srcRnd % kRegs
				src2 := srcRnd / kRegs
				if src2 >= src1 {
					src2++
				}
				sel1 := roundRng.Next()
				dst := roundRng.NextDst()
				sel2 := roundRng.Next()
				fmt.Fprintf(&b, "data = math(mix[%d], mix[%d], %d); merge(mix[%d], data, %d);\n", src1, src2, sel1, dst, sel2)
			}
		}

		dsts := [kWordsPerLane]uint32{0}
		for k := 1; k < kWordsPerLane; k++ {
			dsts[k] = roundRng.NextDst()
		}
		for k := 0; k < kWordsPerLane; k++ {
			sel := roundRng.Next()
			fmt.Fprintf(&b, "merge(mix[%d], data_dag.words[%d], %d);\n", dsts[k], k, sel)
		}
	}

	return b.String()
}

// KernelMatchesRoundSequence walks two freshly seeded MixRNGStates for
// period in lockstep, in the draw order that round() and GenerateKernel
// both use (kDagCount rounds of kCacheCount/kMathCount operations and
// kWordsPerLane DAG merges), and reports whether every draw agrees. It
// calls neither GenerateKernel nor round(), so an edit to the draw order of
// one of them is not detected here.
func KernelMatchesRoundSequence(period uint64) bool {
	cpuRng := NewMixRNGState(period)
	kernelRng := NewMixRNGState(period)

	maxOps := kCacheCount
	if kMathCount > maxOps {
		maxOps = kMathCount
	}

	for r := 0; r < kDagCount; r++ {
		for i := 0; i < maxOps; i++ {
			if i < kCacheCount {
				if cpuRng.NextSrc() != kernelRng.NextSrc() {
					return false
				}
				if cpuRng.NextDst() != kernelRng.NextDst() {
					return false
				}
				if cpuRng.Next() != kernelRng.Next() {
					return false
				}
			}
			if i < kMathCount {
				if cpuRng.Next() != kernelRng.Next() {
					return false
				}
				if cpuRng.Next() != kernelRng.Next() {
					return false
				}
				if cpuRng.NextDst() != kernelRng.NextDst() {
					return false
				}
				if cpuRng.Next() != kernelRng.Next() {
					return false
				}
			}
		}
		for k := 1; k < kWordsPerLane; k++ {
			if cpuRng.NextDst() != kernelRng.NextDst() {
				return false
			}
		}
		for k := 0; k < kWordsPerLane; k++ {
			if cpuRng.Next() != kernelRng.Next() {
				return false
			}
		}
	}
	return true
}
