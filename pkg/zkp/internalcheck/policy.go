package internalcheck

import (
	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/hsiuhsiu/secp256k1-zkp-go"

// BackendPath is the only package allowed to import "C".
const BackendPath = modulePath + "/pkg/zkp/internal/backend"

// SecretPackages handle tweak material and are held to the constant-time and
// no-hex-formatting rules.
var SecretPackages = []string{
	modulePath + "/pkg/zkp",
	modulePath + "/pkg/zkp/fixedhex",
	modulePath + "/pkg/zkp/opaque",
}

// Load parses the given patterns with syntax and type information.
func Load(patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedFiles | packages.NeedName | packages.NeedImports,
	}
	return packages.Load(cfg, patterns...)
}
