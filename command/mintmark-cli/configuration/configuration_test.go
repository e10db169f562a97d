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

	"github.com/stretchr/testify/assert"

	"github.com/mintmark-io/mintmarkd/command/mintmark-cli/configuration"
)

func TestSaveAndReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "mintmark-cli")
	assert.NoError(t, err, "tempdir error")
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "mintmark-cli.json")

	config := &configuration.Configuration{
		DefaultIdentity: "first",
		Connect:         "127.0.0.1:2230",
	}

	err = config.AddIdentity(&configuration.Identity{
		Name:        "first",
		Description: "first identity",
		Address:     "address-one",
		Salt:        "73616c7473616c7473616c7473616c74",
		Data:        "0123456789abcdef",
	})
	assert.NoError(t, err, "add identity error")

	err = config.AddIdentity(&configuration.Identity{
		Name: "first",
	})
	assert.Error(t, err, "duplicate name accepted")

	err = configuration.Save(file, config)
	assert.NoError(t, err, "save error")

	reloaded, err := configuration.GetConfiguration(file)
	assert.NoError(t, err, "reload error")
	assert.Equal(t, config.DefaultIdentity, reloaded.DefaultIdentity, "wrong default identity")
	assert.Equal(t, config.Connect, reloaded.Connect, "wrong connect")
	assert.Equal(t, 1, len(reloaded.Identities), "wrong identity count")

	id, err := reloaded.Identity("")
	assert.NoError(t, err, "default lookup error")
	assert.Equal(t, "first", id.Name, "wrong identity")

	_, err = reloaded.Identity("missing")
	assert.Error(t, err, "missing identity found")

	// a second save rotates the previous file
	err = configuration.Save(file, reloaded)
	assert.NoError(t, err, "second save error")
	_, err = os.Stat(file + ".bk")
	assert.NoError(t, err, "missing backup file")
}

func TestSaltRoundTrip(t *testing.T) {
	salt, err := configuration.MakeSalt()
	assert.NoError(t, err, "make salt error")

	text, err := salt.MarshalText()
	assert.NoError(t, err, "marshal error")
	assert.Equal(t, 32, len(text), "wrong text length")

	recovered := new(configuration.Salt)
	err = recovered.UnmarshalText(text)
	assert.NoError(t, err, "unmarshal error")
	assert.Equal(t, salt.Bytes(), recovered.Bytes(), "salt changed")

	err = recovered.UnmarshalText([]byte("00ff"))
	assert.Error(t, err, "short salt accepted")
}
