// Command arenactl exercises an Arena end to end against a real file:
// create, allocate, mark, pop, save, and load back. It exists to give the
// library a runnable surface, not as a production tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/To0nsa/memory-arena-sub001"
)

func main() {
	size := flag.Int("size", 4096, "arena size in bytes")
	path := flag.String("snapshot", "", "path to save/load a snapshot to/from")
	load := flag.Bool("load", false, "load the snapshot instead of creating fresh data")
	flag.Parse()

	a := arena.New(*size, arena.WithLabel("arenactl"))
	defer a.Destroy()

	if *load {
		if *path == "" {
			log.Fatal("-load requires -snapshot")
		}
		if err := arena.Load(a, *path); err != nil {
			log.Fatalf("load: %v", err)
		}
		fmt.Printf("loaded %d bytes from %s\n", a.Used(), *path)
		return
	}

	m := a.Mark()
	buf, err := a.Alloc(64)
	if err != nil {
		log.Fatalf("alloc: %v", err)
	}
	copy(buf, "hello from arenactl")

	metrics := a.Metrics()
	fmt.Printf("used=%d capacity=%d utilization=%.2f%%\n",
		metrics.SizeInUse, metrics.Capacity, metrics.Utilization*100)

	if *path != "" {
		if err := a.Save(*path); err != nil {
			log.Fatalf("save: %v", err)
		}
		fmt.Printf("saved snapshot to %s\n", *path)
	}

	if err := a.Pop(m); err != nil {
		log.Fatalf("pop: %v", err)
	}
	if a.Used() != 0 {
		fmt.Fprintln(os.Stderr, "warning: arena not empty after pop to initial marker")
	}
}
