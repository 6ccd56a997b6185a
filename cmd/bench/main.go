package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/suffixindex"
)

type variant struct {
	name   string
	config func(*suffixindex.SuffixIndexBuilder) *suffixindex.SuffixIndexBuilder
}

var variants = map[string]variant{
	"full":   {name: "full", config: func(b *suffixindex.SuffixIndexBuilder) *suffixindex.SuffixIndexBuilder { return b }},
	"no_lcp": {name: "no_lcp", config: func(b *suffixindex.SuffixIndexBuilder) *suffixindex.SuffixIndexBuilder { return b.SkipLCP() }},
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(text []byte, config func(*suffixindex.SuffixIndexBuilder) *suffixindex.SuffixIndexBuilder) (time.Duration, uint64, uint64, *suffixindex.SuffixIndex) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	builder := suffixindex.NewBuilder(text)
	builder = config(builder)
	idx, err := builder.Build()
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, idx
}

func measureQuery(idx *suffixindex.SuffixIndex, patterns [][]byte) (time.Duration, uint64, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	for _, p := range patterns {
		_ = idx.Search(p)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc
}

func measureRepeat(idx *suffixindex.SuffixIndex) time.Duration {
	start := time.Now()
	_, _ = idx.LongestRepeatedSubstring()
	return time.Since(start)
}

func runBenchmark(v variant, N, P, Q, runs int, density densityType) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := make([]byte, N)
		for i := range text {
			text[i] = byte(r.Intn(26) + 'a')
		}
		var common []byte
		if density == densityHigh {
			common = make([]byte, P)
			for j := range common {
				common[j] = byte(r.Intn(26) + 'a')
			}
			copies := max(2, N/(10*P))
			for c := 0; c < copies; c++ {
				copy(text[r.Intn(N-P+1):], common)
			}
		}
		bt, bp, ba, idx := measureBuild(text, v.config)
		patterns := make([][]byte, Q)
		for i := range patterns {
			if density == densityHigh {
				patterns[i] = common // All queries use the planted pattern
			} else {
				start := r.Intn(N - P + 1)
				patterns[i] = text[start : start+P]
			}
		}
		qt, qp, qa := measureQuery(idx, patterns)
		rt := measureRepeat(idx)
		fmt.Printf("%s,%d,%d,%d,%s,%.0f,%d,%d,%.0f,%d,%d,%.0f\n",
			v.name, N, P, Q, density,
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa,
			float64(rt.Nanoseconds()))
	}
}

func main() {
	variantName := flag.String("variant", "", "Variant to benchmark")
	n := flag.Int("n", 0, "Text length N")
	p := flag.Int("p", 0, "Pattern length P")
	q := flag.Int("q", 0, "Number of queries Q")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	d := flag.String("d", "low", "Density: low or high")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *variantName == "" || *n <= 0 || *p <= 0 || *q <= 0 || *p > *n {
		fmt.Println("Usage: go run main.go -variant=<variant> -n=<N> -p=<P> -q=<Q> -d=<density> [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runBenchmark(v, *n, *p, *q, *runs, densityType(*d))
}
