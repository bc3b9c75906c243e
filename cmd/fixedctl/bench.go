package main

import (
	"fmt"
	"time"

	"github.com/joshuapare/fixedkit/fixed"
	"github.com/joshuapare/fixedkit/fixed/isr"
	"github.com/spf13/cobra"
)

var (
	benchCapacity int
	benchOps      int
	benchCPU      int
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchCapacity, "capacity", 1024, "Capacity of the measured containers")
	cmd.Flags().IntVar(&benchOps, "ops", 1000000, "Operations per measurement")
	cmd.Flags().IntVar(&benchCPU, "cpu", -1, "Pin the measuring thread to this CPU (-1 to disable)")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure container operation throughput",
		Long: `The bench command runs wall-clock measurements over the core container
operations. For steadier numbers on a busy machine, pin the measuring
thread to a CPU with --cpu.

Example:
  fixedctl bench
  fixedctl bench --capacity 256 --ops 5000000
  fixedctl bench --cpu 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
	return cmd
}

type BenchResult struct {
	Name      string
	Ops       int
	NsPerOp   float64
	OpsPerSec float64
}

func runBench() error {
	if benchCPU >= 0 {
		restore, err := isr.Pin(benchCPU)
		if err != nil {
			return fmt.Errorf("pinning to cpu %d: %w", benchCPU, err)
		}
		defer restore()
		printVerbose("Pinned measuring thread to CPU %d\n", benchCPU)
	}

	runs := []struct {
		name string
		fn   func(ops, capacity int) time.Duration
	}{
		{"vector push/pop", benchVectorPushPop},
		{"ordered set churn", benchOrderedSetChurn},
		{"map try_get", benchMapTryGet},
		{"ring push/pop", benchRingPushPop},
		{"ring push/pop atomic", benchRingAtomic},
	}

	results := make([]BenchResult, 0, len(runs))
	for _, r := range runs {
		printVerbose("Measuring %s...\n", r.name)
		elapsed := r.fn(benchOps, benchCapacity)
		results = append(results, BenchResult{
			Name:      r.name,
			Ops:       benchOps,
			NsPerOp:   float64(elapsed.Nanoseconds()) / float64(benchOps),
			OpsPerSec: float64(benchOps) / elapsed.Seconds(),
		})
	}

	if jsonOut {
		return printJSON(results)
	}

	printInfo("%-22s %12s %12s %14s\n", "measurement", "ops", "ns/op", "ops/sec")
	for _, r := range results {
		printInfo("%-22s %12d %12.1f %14.0f\n", r.Name, r.Ops, r.NsPerOp, r.OpsPerSec)
	}
	return nil
}

func benchVectorPushPop(ops, capacity int) time.Duration {
	v := fixed.NewVector[int](capacity)
	start := time.Now()
	for i := 0; i < ops; i++ {
		v.Push(i)
		v.Pop()
	}
	return time.Since(start)
}

func benchOrderedSetChurn(ops, capacity int) time.Duration {
	s := fixed.NewOrderedSet[int](capacity)
	for i := 0; i < capacity; i++ {
		s.Insert(i)
	}
	start := time.Now()
	for i := 0; i < ops; i++ {
		s.Erase(i % capacity)
		s.Insert(i % capacity)
	}
	return time.Since(start)
}

func benchMapTryGet(ops, capacity int) time.Duration {
	m := fixed.NewMap[int, int](capacity)
	for i := 0; i < capacity; i++ {
		m.Add(i, i)
	}
	start := time.Now()
	for i := 0; i < ops; i++ {
		m.TryGet(i % capacity)
	}
	return time.Since(start)
}

func benchRingPushPop(ops, capacity int) time.Duration {
	r := fixed.NewRingBuffer[int](capacity)
	start := time.Now()
	for i := 0; i < ops; i++ {
		r.Push(i)
		r.Pop()
	}
	return time.Since(start)
}

func benchRingAtomic(ops, capacity int) time.Duration {
	r := fixed.NewRingBuffer[int](capacity)
	start := time.Now()
	for i := 0; i < ops; i++ {
		r.PushAtomic(i)
		r.PopAtomic()
	}
	return time.Since(start)
}
