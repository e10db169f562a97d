// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/mintmark-io/mintmarkd/rpc/node"
)

// GetNodeInfo - request status from mintmarkd (must be matching version)
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// GetNodeInfoCompat - request status from mintmarkd (any version)
func (client *Client) GetNodeInfoCompat() (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return reply, nil
}
