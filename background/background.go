// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of goroutines as a unit
package background

// the shutdown and completed channels for one background
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for the running set
type T struct {
	s []shutdown
}

// Process - interface for a single background
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - run a set of background processes
//
// all are passed the same args value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.s = make([]shutdown, len(processes))

	// start each background
	for i, p := range processes {
		s := shutdown{
			shutdown: make(chan struct{}),
			finished: make(chan struct{}),
		}
		register.s[i] = s
		go func(p Process, s shutdown) {
			// pass the shutdown to the Run loop for shutdown signalling
			p.Run(args, s.shutdown)
			// flag for the stop routine to wait for shutdown
			close(s.finished)
		}(p, s)
	}
	return register
}

// Stop - stop the set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, s := range t.s {
		close(s.shutdown)
	}

	// wait for finished
	for _, s := range t.s {
		<-s.finished
	}
}
