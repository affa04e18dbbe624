// Package internalcheck holds static policy tests for the module.
//
// The tests load the module's packages with golang.org/x/tools/go/packages and
// fail when code outside internal/backend imports "C", when byte slices or
// arrays are compared with == instead of crypto/subtle, or when format strings
// hex-print values in packages that handle secret tweaks.
//
// It is not intended for external use.
package internalcheck
