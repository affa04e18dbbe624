package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"testing"
)

// TestNoDirectByteComparison rejects ==/!= between byte slices or arrays and
// calls to bytes.Equal in packages that handle tweaks. Opaque values compare
// with crypto/subtle.
func TestNoDirectByteComparison(t *testing.T) {
	pkgs, err := Load(SecretPackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		info := pkg.TypesInfo
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				switch node := n.(type) {
				case *ast.BinaryExpr:
					if node.Op != token.EQL && node.Op != token.NEQ {
						return true
					}
					if isBytes(info.TypeOf(node.X)) && isBytes(info.TypeOf(node.Y)) {
						pos := pkg.Fset.Position(node.Pos())
						findings = append(findings, fmt.Sprintf("%s: avoid == on byte data; use crypto/subtle", pos))
					}
				case *ast.CallExpr:
					sel, ok := node.Fun.(*ast.SelectorExpr)
					if !ok {
						return true
					}
					obj := info.Uses[sel.Sel]
					if obj != nil && obj.Pkg() != nil && obj.Pkg().Path() == "bytes" && obj.Name() == "Equal" {
						pos := pkg.Fset.Position(node.Pos())
						findings = append(findings, fmt.Sprintf("%s: bytes.Equal is not constant time", pos))
					}
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("constant-time policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isBytes(typ types.Type) bool {
	if typ == nil {
		return false
	}
	switch tt := typ.Underlying().(type) {
	case *types.Slice:
		return isByte(tt.Elem())
	case *types.Array:
		return isByte(tt.Elem())
	case *types.Pointer:
		return isBytes(tt.Elem())
	default:
		return false
	}
}

func isByte(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Byte
}
