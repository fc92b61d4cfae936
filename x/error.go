/*
 * SPDX-FileCopyrightText: © The geo authors
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// Helpers for conditions that must hold or the process cannot be trusted to
// continue. Out-of-bounds access is never one of those: accessors report it
// with an ok=false return. These are for malformed physical storage, where
// silently produced geometry would corrupt every downstream result.

import (
	"log"

	"github.com/pkg/errors"
)

// Checkf logs fatal if err != nil, annotated with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrapf(err, format, args...))
	}
}

// AssertTruef asserts that b is true. Otherwise, it would log fatal.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}
