// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/rpc/provenance"
)

// Verify - check a record against an expected cultivator
func (client *Client) Verify(caller identity.Identity, sequenceId uint64, expectedCultivator identity.Identity) (*provenance.VerifyReply, error) {

	arguments := provenance.VerifyArguments{
		Caller:             caller,
		SequenceId:         sequenceId,
		ExpectedCultivator: expectedCultivator,
	}

	client.printJson("Verify Request", arguments)

	var reply provenance.VerifyReply
	err := client.client.Call("Provenance.Verify", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Verify Reply", reply)

	return &reply, nil
}
