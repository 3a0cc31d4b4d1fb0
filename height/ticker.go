// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package height

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// background process advancing the height on a fixed interval
type ticker struct {
	interval time.Duration
}

// Run - background processing
func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {

	log := args.(*logger.L)

	clock := time.NewTicker(state.interval)
	defer clock.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-clock.C:
			h := Advance()
			log.Debugf("height: %d", h)
		}
	}
}
