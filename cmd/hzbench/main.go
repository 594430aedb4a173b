// File: cmd/hzbench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// hzbench drives the stack and queue under a configurable producer/
// consumer workload and reports throughput plus domain bookkeeping
// stats at exit.

package main

import (
	"flag"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/momentics/hzconc/api"
	"github.com/momentics/hzconc/internal/container"
	"github.com/momentics/hzconc/internal/diag"
)

func main() {
	kind := flag.String("kind", "queue", "workload to run: stack or queue")
	producers := flag.Int("producers", 4, "number of producer goroutines")
	consumers := flag.Int("consumers", 4, "number of consumer goroutines")
	perProducer := flag.Int("count", 100000, "values enqueued/pushed per producer")
	maxObjects := flag.Int("max-objects", 256, "hazard domain slot table size")
	flag.Parse()

	log := diag.New("hzbench")
	cfg := api.DomainConfig{
		MaxObjects:           *maxObjects,
		RetireStartThreshold: 2 * *maxObjects,
		RetireCap:            32 * *maxObjects,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Printf("interrupted, exiting")
		os.Exit(1)
	}()

	switch *kind {
	case "stack":
		runStack(log, cfg, *producers, *consumers, *perProducer)
	case "queue":
		runQueue(log, cfg, *producers, *consumers, *perProducer)
	default:
		log.Fatalf("unknown -kind %q: want stack or queue", *kind)
	}
}

func runStack(log *diag.Logger, cfg api.DomainConfig, producers, consumers, perProducer int) {
	s := container.NewStack[int](cfg)
	defer s.Close()

	var consumed atomic.Int64
	start := time.Now()

	var produceWg sync.WaitGroup
	produceWg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(base int) {
			defer produceWg.Done()
			for i := 0; i < perProducer; i++ {
				s.Push(base*perProducer + i)
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		produceWg.Wait()
		close(done)
	}()

	var consumeWg sync.WaitGroup
	consumeWg.Add(consumers)
	for c := 0; c < consumers; c++ {
		go func() {
			defer consumeWg.Done()
			drainUntilDone(done, func() bool {
				if _, ok := s.Pop(); ok {
					consumed.Add(1)
					return true
				}
				return false
			})
		}()
	}
	consumeWg.Wait()

	elapsed := time.Since(start)
	log.Printf("stack: produced=%d consumed=%d elapsed=%s", producers*perProducer, consumed.Load(), elapsed)
	log.Printf("stack: domain stats=%+v", s.Stats())
}

func runQueue(log *diag.Logger, cfg api.DomainConfig, producers, consumers, perProducer int) {
	q := container.NewQueue[int](cfg)
	defer q.Close()

	var consumed atomic.Int64
	start := time.Now()

	var produceWg sync.WaitGroup
	produceWg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(base int) {
			defer produceWg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(base*perProducer + i)
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		produceWg.Wait()
		close(done)
	}()

	var consumeWg sync.WaitGroup
	consumeWg.Add(consumers)
	for c := 0; c < consumers; c++ {
		go func() {
			defer consumeWg.Done()
			drainUntilDone(done, func() bool {
				if _, ok := q.Dequeue(); ok {
					consumed.Add(1)
					return true
				}
				return false
			})
		}()
	}
	consumeWg.Wait()

	elapsed := time.Since(start)
	log.Printf("queue: produced=%d consumed=%d elapsed=%s", producers*perProducer, consumed.Load(), elapsed)
	log.Printf("queue: domain stats=%+v", q.Stats())
}

// drainUntilDone calls tryOnce until production has finished and a
// final pass finds nothing left.
func drainUntilDone(done <-chan struct{}, tryOnce func() bool) {
	for {
		if tryOnce() {
			continue
		}
		select {
		case <-done:
			if tryOnce() {
				continue
			}
			return
		default:
		}
	}
}
