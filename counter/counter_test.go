// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/harvestmark-inc/harvestmarkd/counter"
)

func TestCounter(t *testing.T) {

	var c counter.Counter

	if !c.IsZero() {
		t.Fatalf("new counter is not zero")
	}

	if 1 != c.Increment() {
		t.Errorf("increment did not return 1")
	}
	if 1 != c.Uint64() {
		t.Errorf("counter value: %d  expected: 1", c.Uint64())
	}
	if 0 != c.Decrement() {
		t.Errorf("decrement did not return 0")
	}

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			for j := 0; j < 100; j += 1 {
				c.Increment()
			}
			wg.Done()
		}()
	}
	wg.Wait()

	if 1000 != c.Uint64() {
		t.Errorf("counter value: %d  expected: 1000", c.Uint64())
	}
}
