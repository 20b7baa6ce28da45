// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for lsx tests that fail the test on
// setup errors instead of returning them.
package testutil
