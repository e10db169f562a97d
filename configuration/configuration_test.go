// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mintmark-io/mintmarkd/configuration"
)

type testConfig struct {
	DataDirectory string `gluamapper:"data_directory"`
	Edition       struct {
		Name     string `gluamapper:"name"`
		Capacity uint64 `gluamapper:"capacity"`
		Price    uint64 `gluamapper:"price"`
	} `gluamapper:"edition"`
	Listen []string `gluamapper:"listen"`
}

const luaScript = `
local M = {}
M.data_directory = "/var/lib/mintmarkd"
M.edition = {
    name = "first-edition",
    capacity = 1000,
    price = 5000,
}
M.listen = {
    "127.0.0.1:2150",
    "[::1]:2150",
}
return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "mintmarkd.conf")
	if err := ioutil.WriteFile(fileName, []byte(luaScript), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	var config testConfig
	err = configuration.ParseConfigurationFile(fileName, &config)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	if "/var/lib/mintmarkd" != config.DataDirectory {
		t.Errorf("data directory: %q", config.DataDirectory)
	}
	if "first-edition" != config.Edition.Name {
		t.Errorf("edition name: %q", config.Edition.Name)
	}
	if 1000 != config.Edition.Capacity {
		t.Errorf("capacity: %d", config.Edition.Capacity)
	}
	if 5000 != config.Edition.Price {
		t.Errorf("price: %d", config.Edition.Price)
	}
	if 2 != len(config.Listen) {
		t.Fatalf("listen count: %d", len(config.Listen))
	}
	if "127.0.0.1:2150" != config.Listen[0] {
		t.Errorf("listen[0]: %q", config.Listen[0])
	}
}

func TestParseMissingFile(t *testing.T) {
	var config testConfig
	err := configuration.ParseConfigurationFile("no-such-file.conf", &config)
	if nil == err {
		t.Fatal("parse accepted a missing file")
	}
}
