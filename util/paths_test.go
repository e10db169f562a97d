// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/mintmark-io/mintmarkd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	testData := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "file.txt", "/data/file.txt"},
		{"/data", "/other/file.txt", "/other/file.txt"},
		{"/data", "./file.txt", "/data/file.txt"},
		{"/data/", "sub/../file.txt", "/data/file.txt"},
	}

	for i, item := range testData {
		actual := util.EnsureAbsolute(item.directory, item.path)
		if item.expected != actual {
			t.Errorf("%d: EnsureAbsolute(%q, %q) = %q  expected: %q",
				i, item.directory, item.path, actual, item.expected)
		}
	}
}
