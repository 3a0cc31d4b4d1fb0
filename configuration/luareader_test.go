// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harvestmark-inc/harvestmarkd/configuration"
	"github.com/harvestmark-inc/harvestmarkd/fault"
)

type testConfiguration struct {
	DataDirectory string   `gluamapper:"data_directory"`
	Nodes         []string `gluamapper:"nodes"`
	Maximum       int      `gluamapper:"maximum"`
}

const luaText = `
local M = {}

M.data_directory = "/var/lib/testing"
M.maximum = 10
M.nodes = {
    "127.0.0.1:1234",
    "[::1]:1234",
}

return M
`

func TestParseConfigurationFile(t *testing.T) {

	fileName := "test-configuration.lua"
	err := ioutil.WriteFile(fileName, []byte(luaText), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	defer os.Remove(fileName)

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "/var/lib/testing", config.DataDirectory, "data directory")
	assert.Equal(t, 10, config.Maximum, "maximum")
	assert.Equal(t, []string{"127.0.0.1:1234", "[::1]:1234"}, config.Nodes, "nodes")
}

func TestParseRejectsNonPointer(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile("no-such-file.lua", config)
	assert.Equal(t, fault.InvalidStructPointer, err, "non pointer accepted")
}
