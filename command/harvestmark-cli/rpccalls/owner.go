// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/rpc/owner"
)

// Transfer - reassign ownership of a record
func (client *Client) Transfer(caller identity.Identity, sequenceId uint64, recipient identity.Identity) (*owner.TransferReply, error) {

	arguments := owner.TransferArguments{
		Caller:     caller,
		SequenceId: sequenceId,
		Recipient:  recipient,
	}

	client.printJson("Transfer Request", arguments)

	var reply owner.TransferReply
	err := client.client.Call("Owner.Transfer", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return &reply, nil
}

// Grant - record an access grant for a record
func (client *Client) Grant(caller identity.Identity, sequenceId uint64, target identity.Identity, allowed bool) (*owner.GrantReply, error) {

	arguments := owner.GrantArguments{
		Caller:     caller,
		SequenceId: sequenceId,
		Target:     target,
		Allowed:    allowed,
	}

	client.printJson("Grant Request", arguments)

	var reply owner.GrantReply
	err := client.client.Call("Owner.Grant", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Grant Reply", reply)

	return &reply, nil
}

// Revoke - remove an access grant from a record
func (client *Client) Revoke(caller identity.Identity, sequenceId uint64, target identity.Identity) (*owner.RevokeReply, error) {

	arguments := owner.RevokeArguments{
		Caller:     caller,
		SequenceId: sequenceId,
		Target:     target,
	}

	client.printJson("Revoke Request", arguments)

	var reply owner.RevokeReply
	err := client.client.Call("Owner.Revoke", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Revoke Reply", reply)

	return &reply, nil
}
