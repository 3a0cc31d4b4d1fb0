// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/harvestmark-inc/harvestmarkd/identity"
	"github.com/harvestmark-inc/harvestmarkd/rpc/record"
)

// CreateData - data for a create request
type CreateData struct {
	Caller      identity.Identity
	Produce     string
	Volume      uint64
	Location    string
	Descriptors []string
}

// Create - register a new production record
func (client *Client) Create(createConfig *CreateData) (*record.CreateReply, error) {

	arguments := record.CreateArguments{
		Caller:      createConfig.Caller,
		Produce:     createConfig.Produce,
		Volume:      createConfig.Volume,
		Location:    createConfig.Location,
		Descriptors: createConfig.Descriptors,
	}

	client.printJson("Create Request", arguments)

	var reply record.CreateReply
	err := client.client.Call("Record.Create", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return &reply, nil
}

// ModifyData - data for a modify request
type ModifyData struct {
	Caller      identity.Identity
	SequenceId  uint64
	Produce     string
	Volume      uint64
	Location    string
	Descriptors []string
}

// Modify - replace the descriptive fields of a record
func (client *Client) Modify(modifyConfig *ModifyData) (*record.ModifyReply, error) {

	arguments := record.ModifyArguments{
		Caller:      modifyConfig.Caller,
		SequenceId:  modifyConfig.SequenceId,
		Produce:     modifyConfig.Produce,
		Volume:      modifyConfig.Volume,
		Location:    modifyConfig.Location,
		Descriptors: modifyConfig.Descriptors,
	}

	client.printJson("Modify Request", arguments)

	var reply record.ModifyReply
	err := client.client.Call("Record.Modify", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Modify Reply", reply)

	return &reply, nil
}

// AppendData - data for an append request
type AppendData struct {
	Caller      identity.Identity
	SequenceId  uint64
	Descriptors []string
}

// Append - add supplementary descriptors to a record
func (client *Client) Append(appendConfig *AppendData) (*record.AppendReply, error) {

	arguments := record.AppendArguments{
		Caller:      appendConfig.Caller,
		SequenceId:  appendConfig.SequenceId,
		Descriptors: appendConfig.Descriptors,
	}

	client.printJson("Append Request", arguments)

	var reply record.AppendReply
	err := client.client.Call("Record.Append", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Append Reply", reply)

	return &reply, nil
}

// Purge - permanently delete a record
func (client *Client) Purge(caller identity.Identity, sequenceId uint64) (*record.PurgeReply, error) {

	arguments := record.PurgeArguments{
		Caller:     caller,
		SequenceId: sequenceId,
	}

	client.printJson("Purge Request", arguments)

	var reply record.PurgeReply
	err := client.client.Call("Record.Purge", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Purge Reply", reply)

	return &reply, nil
}

// Restrict - place a record under emergency restriction
func (client *Client) Restrict(caller identity.Identity, sequenceId uint64) (*record.RestrictReply, error) {

	arguments := record.RestrictArguments{
		Caller:     caller,
		SequenceId: sequenceId,
	}

	client.printJson("Restrict Request", arguments)

	var reply record.RestrictReply
	err := client.client.Call("Record.Restrict", &arguments, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Restrict Reply", reply)

	return &reply, nil
}
