package internalcheck

import (
	"go/ast"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestNoDirectByteComparison(t *testing.T) {
	pkgs := loadChecked(t)

	findings := inspect(pkgs, func(pkg *packages.Package, n ast.Node) string {
		switch n := n.(type) {
		case *ast.BinaryExpr:
			if n.Op != token.EQL && n.Op != token.NEQ {
				return ""
			}
			if isByteSeq(pkg.TypesInfo.TypeOf(n.X)) && isByteSeq(pkg.TypesInfo.TypeOf(n.Y)) {
				return "avoid == on byte sequences; use crypto/subtle"
			}
		case *ast.CallExpr:
			if pkgPath, name, ok := calledFunc(pkg, n); ok && pkgPath == "bytes" && name == "Equal" {
				return "avoid bytes.Equal; use crypto/subtle.ConstantTimeCompare"
			}
		}
		return ""
	})

	report(t, "constant-time", findings)
}

func isByteSeq(typ types.Type) bool {
	if typ == nil {
		return false
	}

	switch tt := typ.(type) {
	case *types.Slice:
		return isByte(tt.Elem())
	case *types.Pointer:
		return isByteSeq(tt.Elem())
	case *types.Named:
		return isByteSeq(tt.Underlying())
	case *types.Array:
		return isByte(tt.Elem())
	default:
		return false
	}
}

func isByte(t types.Type) bool {
	basic, ok := t.(*types.Basic)
	return ok && basic.Kind() == types.Byte
}
