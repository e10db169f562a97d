// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - request throttling shared by the RPC handlers
//
// each handler owns one limiter; queries cost one token, bulk
// operations cost one token per unit so a large issue or mint drains
// the same budget as the equivalent run of single calls
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/mintmark-io/mintmarkd/fault"
)

// block until the reservation matures
func wait(r *rate.Reservation) error {
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Limit - throttle one single-unit request
func Limit(limiter *rate.Limiter) error {
	return wait(limiter.Reserve())
}

// LimitN - throttle a request covering count units
//
// an out-of-range count still costs one token before it is rejected,
// so a flood of invalid requests cannot bypass the limiter
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter.Reserve()); nil != err {
			return err
		}
		return fault.InvalidCount
	}

	return wait(limiter.ReserveN(time.Now(), count))
}
