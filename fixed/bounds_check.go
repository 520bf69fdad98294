// SPDX-License-Identifier: MIT

//go:build matcheck

package fixed

// boundsCheck enables package-level index assertions on the Get/Put fast
// path. Building with `-tags matcheck` compiles the assertions in; default
// builds compile them out entirely (see bounds_nocheck.go).
const boundsCheck = true
