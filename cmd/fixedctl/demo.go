package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/fixedkit/fixed"
	"github.com/spf13/cobra"
)

var demoCapacity int

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoCapacity, "capacity", 3, "Capacity used by the demo containers")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [container]",
		Short: "Walk a container through its characteristic scenario",
		Long: `The demo command drives one container type (or all of them) through the
operations that show its behavior: capacity rejection, duplicate rejection,
sort maintenance, key lookup, and ring wrap-around.

Example:
  fixedctl demo
  fixedctl demo ring
  fixedctl demo map --capacity 4 --json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"vector", "set", "ordered", "map", "ring"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := "all"
			if len(args) == 1 {
				which = args[0]
			}
			return runDemo(which)
		},
	}
	return cmd
}

type DemoStep struct {
	Op      string
	OK      bool
	Content string
}

type DemoResult struct {
	Container string
	Capacity  int
	Steps     []DemoStep
}

func runDemo(which string) error {
	demos := map[string]func(int) DemoResult{
		"vector":  demoVector,
		"set":     demoSet,
		"ordered": demoOrdered,
		"map":     demoMap,
		"ring":    demoRing,
	}

	order := []string{"vector", "set", "ordered", "map", "ring"}
	if which != "all" {
		if _, ok := demos[which]; !ok {
			return fmt.Errorf("unknown container %q", which)
		}
		order = []string{which}
	}

	printVerbose("Running %d demo(s) at capacity %d\n", len(order), demoCapacity)

	results := make([]DemoResult, 0, len(order))
	for _, name := range order {
		results = append(results, demos[name](demoCapacity))
	}

	if jsonOut {
		return printJSON(results)
	}

	for _, res := range results {
		printInfo("\n%s (capacity %d)\n", res.Container, res.Capacity)
		for _, s := range res.Steps {
			status := "ok"
			if !s.OK {
				status = "rejected"
			}
			printInfo("  %-24s %-9s %s\n", s.Op, status, s.Content)
		}
	}
	return nil
}

// drained exhausts a Next-style iterator method into a slice.
func drained[T any](next func() (T, bool)) []T {
	var out []T
	for v, ok := next(); ok; v, ok = next() {
		out = append(out, v)
	}
	return out
}

func demoVector(capacity int) DemoResult {
	v := fixed.NewVector[int](capacity)
	res := DemoResult{Container: "vector", Capacity: capacity}
	content := func() string {
		it := v.Iter()
		return fmt.Sprint(drained(it.Next))
	}

	for i := 1; i <= capacity+1; i++ {
		ok := v.Push(i * 10)
		res.Steps = append(res.Steps, DemoStep{fmt.Sprintf("push %d", i*10), ok, content()})
	}
	n, ok := v.Pop()
	res.Steps = append(res.Steps, DemoStep{fmt.Sprintf("pop -> %d", n), ok, content()})
	return res
}

func demoSet(capacity int) DemoResult {
	s := fixed.NewSet[string](capacity)
	res := DemoResult{Container: "set", Capacity: capacity}
	content := func() string {
		it := s.Iter()
		return fmt.Sprint(drained(it.Next))
	}

	for _, color := range []string{"red", "green", "red"} {
		ok := s.Insert(color)
		res.Steps = append(res.Steps, DemoStep{"insert " + color, ok, content()})
	}
	ok := s.Erase("green")
	res.Steps = append(res.Steps, DemoStep{"erase green", ok, content()})
	return res
}

func demoOrdered(capacity int) DemoResult {
	v := fixed.NewOrderedVector[int](capacity)
	res := DemoResult{Container: "ordered", Capacity: capacity}
	content := func() string {
		it := v.Iter()
		return fmt.Sprint(drained(it.Next))
	}

	for _, n := range []int{30, 10, 20, 20, 40} {
		ok := v.Insert(n)
		res.Steps = append(res.Steps, DemoStep{fmt.Sprintf("insert %d", n), ok, content()})
	}
	removed := v.RemoveAll(20)
	res.Steps = append(res.Steps, DemoStep{
		fmt.Sprintf("remove_all 20 -> %d", removed), removed > 0, content(),
	})
	return res
}

func demoMap(capacity int) DemoResult {
	m := fixed.NewMap[int, string](capacity)
	res := DemoResult{Container: "map", Capacity: capacity}
	content := func() string {
		it := m.Iter()
		pairs := drained(it.Next)
		parts := make([]string, 0, len(pairs))
		for _, kv := range pairs {
			parts = append(parts, fmt.Sprintf("%d:%s", kv.Key, kv.Value))
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	rec := func(op string, ok bool) {
		res.Steps = append(res.Steps, DemoStep{op, ok, content()})
	}

	rec("add 5=a", m.Add(5, "a"))
	rec("add 2=b", m.Add(2, "b"))
	rec("add 5=c (key in use)", m.Add(5, "c"))
	got, ok := m.TryGet(5)
	rec(fmt.Sprintf("try_get 5 -> %s", got), ok)
	rec("add 9=d", m.Add(9, "d"))
	rec("add 1=e", m.Add(1, "e"))
	got, ok = m.Remove(2)
	rec(fmt.Sprintf("remove 2 -> %s", got), ok)
	return res
}

func demoRing(capacity int) DemoResult {
	r := fixed.NewRingBuffer[int](capacity)
	res := DemoResult{Container: "ring", Capacity: capacity}
	content := func() string {
		it := r.Iter()
		return fmt.Sprint(drained(it.Next))
	}
	rec := func(op string, ok bool) {
		res.Steps = append(res.Steps, DemoStep{op, ok, content()})
	}

	for i := 1; i <= capacity; i++ {
		rec(fmt.Sprintf("push %d", i), r.Push(i))
	}
	rec(fmt.Sprintf("push %d", capacity+1), r.Push(capacity+1))
	n, ok := r.Pop()
	rec(fmt.Sprintf("pop -> %d", n), ok)
	rec(fmt.Sprintf("push %d", capacity+1), r.Push(capacity+1))
	return res
}
