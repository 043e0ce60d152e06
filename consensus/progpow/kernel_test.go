package progpow

import (
	"strings"
	"testing"
)

func TestGenerateKernelDeterministic(t *testing.T) {
	a := GenerateKernel(30000, KernelOpenCL)
	b := GenerateKernel(30000, KernelOpenCL)
	if a != b {
		t.Fatalf("GenerateKernel is not deterministic for a fixed period")
	}
}

func TestGenerateKernelVariesByPeriod(t *testing.T) {
	a := GenerateKernel(1, KernelOpenCL)
	b := GenerateKernel(2, KernelOpenCL)
	if a == b {
		t.Fatalf("different periods should produce different kernel source")
	}
}

func TestGenerateKernelVariesByType(t *testing.T) {
	a := GenerateKernel(1, KernelOpenCL)
	b := GenerateKernel(1, KernelCUDA)
	if !strings.Contains(a, "OpenCL") {
		t.Errorf("OpenCL kernel header missing marker")
	}
	if !strings.Contains(b, "CUDA") {
		t.Errorf("CUDA kernel header missing marker")
	}
}

func TestKernelMatchesRoundSequence(t *testing.T) {
	for _, period := range []uint64{0, 1, 30000, 123456} {
		if !KernelMatchesRoundSequence(period) {
			t.Errorf("kernel RNG sequence diverged from round() for period %d", period)
		}
	}
}
