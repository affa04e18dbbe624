// Package backend hosts the thin cgo layer that links the Go API to the
// native secp256k1-zkp library. It is the only package in the module that
// imports "C". The real implementation lives behind build tags so that the
// rest of the repository can compile without cgo.
package backend
