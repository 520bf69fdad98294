// SPDX-License-Identifier: MIT

//go:build !matcheck

package fixed

// boundsCheck is false in default builds: the Get/Put fast path carries no
// assertion branch of its own. Out-of-range access is still guaranteed-safe
// because the gonum backend performs its own range panic.
const boundsCheck = false
