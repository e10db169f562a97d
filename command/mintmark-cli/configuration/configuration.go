// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the JSON configuration file of the cli
//
// holds the connection endpoint and the named identities; the seed of
// each identity is stored encrypted with a password-derived key
package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Identity - one named key holder in the configuration file
type Identity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"` // base58
	Salt        string `json:"salt"`
	Data        string `json:"data"` // encrypted seed
}

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string     `json:"default_identity"`
	Connect         string     `json:"connect"`
	Identities      []Identity `json:"identities"`
}

// InfoIdentity - restricted access to data (excludes private items)
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// InfoConfiguration - restricted view of configuration
type InfoConfiguration struct {
	DefaultIdentity string         `json:"default_identity"`
	Connect         string         `json:"connect"`
	Identities      []InfoIdentity `json:"identities"`
}

// GetConfiguration - full access to data (includes private data)
func GetConfiguration(filename string) (*Configuration, error) {

	options := &Configuration{}

	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}
	return options, nil
}

// GetInfoConfiguration - restricted access to data (excludes private items)
func GetInfoConfiguration(filename string) (*InfoConfiguration, error) {

	options := &InfoConfiguration{}

	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}

	sort.Slice(options.Identities, func(i, j int) bool {
		return options.Identities[i].Name < options.Identities[j].Name
	})

	return options, nil
}

// Identity - find an identity by name, "" selects the default
func (c *Configuration) Identity(name string) (*Identity, error) {
	if "" == name {
		name = c.DefaultIdentity
	}
	for i, id := range c.Identities {
		if name == id.Name {
			return &c.Identities[i], nil
		}
	}
	return nil, fmt.Errorf("identity: %q not found", name)
}

// AddIdentity - append a new identity, name must be unused
func (c *Configuration) AddIdentity(identity *Identity) error {
	for _, id := range c.Identities {
		if identity.Name == id.Name {
			return fmt.Errorf("identity: %q already exists", identity.Name)
		}
	}
	c.Identities = append(c.Identities, *identity)
	return nil
}

// Save - atomically rewrite the configuration file
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	os.Remove(tempFile)

	file, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return err
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	err = enc.Encode(configuration)
	file.Close()
	if nil != err {
		os.Remove(tempFile)
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// generic JSON decoder
func readConfiguration(filename string, options interface{}) error {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return err
	}

	f, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	err = dec.Decode(options)
	if nil != err {
		return err
	}

	return nil
}
