//go:build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// runCounted runs f under hardware performance counters and prints the
// cycle and instruction totals. The instruction counter is nested inside
// the cycle counter so the work runs once.
func runCounted(f func()) {
	var (
		insns *perf.ProfileValue
		ierr  error
	)
	cycles, err := perf.CPUCycles(func() error {
		insns, ierr = perf.CPUInstructions(func() error {
			f()
			return nil
		})
		return nil
	})
	if err != nil || ierr != nil {
		fmt.Printf("perf counters unavailable: %v %v\n", err, ierr)
		return
	}
	fmt.Printf("%d\t\t= CPU cycles\n", cycles.Value)
	fmt.Printf("%d\t\t= CPU instructions\n", insns.Value)
	if cycles.Value != 0 {
		fmt.Printf("%8.3f\t\t= instructions per cycle\n",
			float64(insns.Value)/float64(cycles.Value))
	}
}
