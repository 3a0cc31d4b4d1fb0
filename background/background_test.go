// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/harvestmark-inc/harvestmarkd/background"
)

type counting struct {
	count int
}

const (
	initialCountOne = 246
	finalCountOne   = 987654321
	initialCountTwo = 777
	finalCountTwo   = 897645312
)

func TestBackground(t *testing.T) {

	procOne := &counting{
		count: initialCountOne,
	}
	procTwo := &counting{
		count: initialCountTwo,
	}

	// list of background processes to start
	processes := background.Processes{
		procOne,
		procTwo,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	if finalCountOne != procOne.count {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", finalCountOne, procOne.count)
	}
	if finalCountTwo != procTwo.count {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", finalCountTwo, procTwo.count)
	}
}

func (state *counting) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

	n := 0
	switch state.count {
	case initialCountOne:
		n = 1
	case initialCountTwo:
		n = 2
	default:
		t.Errorf("initialisation failed: unexpected initial count: %d", state.count)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
			state.count += n
			time.Sleep(time.Millisecond)
		}
	}

	switch n {
	case 1:
		state.count = finalCountOne
	case 2:
		state.count = finalCountTwo
	}
}
