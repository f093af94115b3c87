/*
	Basic Script that runs every fill strategy on its own index and prints how
	much heap each one leaves behind, before and after a memory trim.
*/

package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/0xRadioAc7iv/go-memhog/core"
	"github.com/0xRadioAc7iv/go-memhog/internal/memory"
)

var keepAlive *core.InverseIndex

func main() {
	amount := flag.Uint("amount", 250_000, "pairs per strategy")
	flag.Parse()

	fmt.Printf("Comparing fill strategies with %d pairs each\n", *amount)

	for _, s := range []core.Strategy{core.Light, core.IterativeCollect, core.ConsumingCollect} {
		runStrategy(s, uint32(*amount))
	}
}

func runStrategy(s core.Strategy, amount uint32) {
	// ---- BASELINE ----
	keepAlive = nil
	if _, err := memory.Trim(); err != nil {
		fmt.Println("trim error:", err)
	}
	base := memory.Read()

	// ---- FILL ----
	start := time.Now()
	idx := core.NewInverseIndex()
	s.Fill(idx, core.GenerateRandomPairs(amount))
	elapsed := time.Since(start)
	filled := memory.Read()

	// ---- TRIM (index still live) ----
	released, err := memory.Trim()
	if err != nil {
		fmt.Println("trim error:", err)
	}
	trimmed := memory.Read()

	keepAlive = idx
	runtime.KeepAlive(idx)

	fmt.Printf("[%s] filled in %v, values=%d\n", s, elapsed, idx.Len())
	fmt.Printf("  heap after fill: %s  rss: %s\n", grown(base.HeapAlloc, filled.HeapAlloc), humanize.IBytes(filled.RSS))
	fmt.Printf("  heap after trim: %s  rss: %s  released=%v\n", grown(base.HeapAlloc, trimmed.HeapAlloc), humanize.IBytes(trimmed.RSS), released)
}

func grown(before, after uint64) string {
	if after < before {
		return "0 B"
	}
	return humanize.IBytes(after - before)
}
