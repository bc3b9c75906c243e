package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Container   string
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	// Read benchmark output
	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	// Parse benchmarks
	results := parseBenchmarks(scanner)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	// Generate markdown report
	report := generateMarkdownReport(results)

	// Write output
	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	// Close input file if opened
	if inputF != nil {
		inputF.Close()
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	// Regex to parse benchmark output lines
	// Benchmark_VectorPushPop-8    10000    12.4 ns/op    0 B/op    0 allocs/op
	benchmarkRegex := regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+(?:B|MB)/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Try to parse as JSON (from -json flag)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		// Parse benchmark line
		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var bytesPerOp int64
		var allocsPerOp int64

		if matches[4] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}

		operation, container := parseBenchmarkName(name)
		if operation == "" {
			continue
		}

		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			Container:   container,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Container != results[j].Container {
			return results[i].Container < results[j].Container
		}
		return results[i].Operation < results[j].Operation
	})

	return results
}

func parseBenchmarkName(name string) (string, string) {
	// Handle benchmarks like: Benchmark_VectorPushPop-8
	// Or with a sub-benchmark: Benchmark_OrderedInsert/cap1024-8

	// Strip the -N proc suffix from the last path element
	parts := strings.Split(name, "/")
	lastPart := parts[len(parts)-1]
	if dashIdx := strings.LastIndex(lastPart, "-"); dashIdx > 0 {
		parts[len(parts)-1] = lastPart[:dashIdx]
	}

	operation := strings.TrimPrefix(parts[0], "Benchmark")
	operation = strings.TrimPrefix(operation, "_")
	if operation == "" {
		return "", ""
	}
	if len(parts) > 1 {
		operation = operation + "/" + strings.Join(parts[1:], "/")
	}

	return operation, categorizeContainer(operation)
}

func categorizeContainer(operation string) string {
	op := strings.ToLower(operation)

	switch {
	case strings.Contains(op, "ring"):
		return "RingBuffer"
	case strings.Contains(op, "map"):
		return "Map"
	case strings.Contains(op, "orderedset"):
		return "OrderedSet"
	case strings.Contains(op, "ordered"):
		return "OrderedVector"
	case strings.Contains(op, "set"):
		return "Set"
	case strings.Contains(op, "vector"):
		return "Vector"
	default:
		return "Other"
	}
}

func generateMarkdownReport(results []BenchmarkResult) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	// Summary statistics
	zeroAlloc := 0
	allocating := 0

	for _, r := range results {
		if r.AllocsPerOp == 0 {
			zeroAlloc++
		} else {
			allocating++
		}
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total benchmarks**: %d\n", len(results)))
	sb.WriteString(fmt.Sprintf("- **Zero-allocation steady state**: %d\n", zeroAlloc))
	if allocating > 0 {
		sb.WriteString(fmt.Sprintf("- **Allocating per op** (check these): %d\n", allocating))
	} else {
		sb.WriteString("- **Allocating per op**: 0\n")
	}
	sb.WriteString("\n")

	// Detailed results table
	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Container | ns/op | B/op | allocs/op | Steady |\n")
	sb.WriteString("|-----------|-----------|-------|------|-----------|--------|\n")

	for _, r := range results {
		indicator := "✓"
		if r.AllocsPerOp > 0 {
			indicator = "✗"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d | %s |\n",
			r.Operation,
			r.Container,
			formatNumber(r.NsPerOp),
			formatBytes(r.BytesPerOp),
			r.AllocsPerOp,
			indicator,
		))
	}

	sb.WriteString("\n")

	// Per-container summaries
	sb.WriteString("## Performance by Container\n\n")

	grouped := make(map[string][]BenchmarkResult)
	var containers []string
	for _, r := range results {
		if _, seen := grouped[r.Container]; !seen {
			containers = append(containers, r.Container)
		}
		grouped[r.Container] = append(grouped[r.Container], r)
	}
	sort.Strings(containers)

	for _, container := range containers {
		group := grouped[container]
		avgNs := 0.0
		worstAllocs := int64(0)
		for _, r := range group {
			avgNs += r.NsPerOp
			if r.AllocsPerOp > worstAllocs {
				worstAllocs = r.AllocsPerOp
			}
		}
		avgNs /= float64(len(group))

		status := "✓"
		if worstAllocs > 0 {
			status = "✗"
		}
		sb.WriteString(fmt.Sprintf("- %s **%s**: %s ns/op average over %d benchmark(s)\n",
			status, container, formatNumber(avgNs), len(group)))
	}

	sb.WriteString("\n")

	// Notes
	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Steady ✓**: no per-operation heap allocations\n")
	sb.WriteString("- **Steady ✗**: the operation allocates; capacity is meant to be paid once at construction\n")
	sb.WriteString("- Run with: `go test -bench . -benchmem ./fixed/ | go run scripts/benchmark_parser.go`\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.1f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
