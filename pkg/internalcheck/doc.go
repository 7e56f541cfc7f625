// Package internalcheck holds source-level policy tests for the signing
// packages. It has no exported API; its tests load the packages with
// golang.org/x/tools/go/packages and walk their syntax trees.
//
// The policies:
//
//   - no %x or %X verbs in format strings, so scalars and nonces never reach
//     logs or error messages as hex
//   - no == or != on byte slices or arrays, and no bytes.Equal; secret
//     comparisons go through crypto/subtle
//   - no calls into package log and no fmt.Print family; only ecdsa.Signer
//     logs, through pkg/logging
//
// # Internal Use Only
//
// This package should not be imported. The checked packages are listed in
// checkedPackages in the test files.
package internalcheck
