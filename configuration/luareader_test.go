// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 FlightSurety Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightsurety/suretyd/configuration"
)

type testRPC struct {
	MaximumConnections int      `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string  `gluamapper:"data_directory"`
	Owner         string  `gluamapper:"owner"`
	ClientRPC     testRPC `gluamapper:"client_rpc"`
}

const luaScript = `
local M = {}

M.data_directory = "/var/lib/suretyd"
M.owner = "ownerBase58"

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:2130",
        "[::1]:2130",
    },
}

return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "tempdir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "suretyd.conf")
	err = ioutil.WriteFile(fileName, []byte(luaScript), 0600)
	assert.Nil(t, err, "write error")

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "/var/lib/suretyd", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "ownerBase58", config.Owner, "wrong owner")
	assert.Equal(t, 50, config.ClientRPC.MaximumConnections, "wrong connection limit")
	assert.Equal(t, 2, len(config.ClientRPC.Listen), "wrong listen count")
}

func TestParseMissingFile(t *testing.T) {
	var config testConfiguration
	err := configuration.ParseConfigurationFile("no-such-file.conf", &config)
	assert.NotNil(t, err, "missing file accepted")
}
