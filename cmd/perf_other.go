//go:build !linux

package cmd

import "fmt"

func runCounted(f func()) {
	fmt.Println("perf counters require linux; running without them")
	f()
}
