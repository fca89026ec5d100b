package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

// Threads reports the recommended number of worker goroutines on this machine.
// It is the number of logical cores, falling back to runtime.NumCPU. Can't return 0.
func Threads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// CPU describes the processor, for logging
func CPU() string {
	if cpuid.CPU.BrandName != "" {
		return cpuid.CPU.BrandName
	}
	return cpuid.CPU.VendorString
}
