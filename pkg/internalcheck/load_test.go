package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/coinbase/cb-secp256k1-go"

var checkedPackages = []string{
	modulePath + "/internal/secmem",
	modulePath + "/pkg/hash",
	modulePath + "/pkg/field",
	modulePath + "/pkg/curve",
	modulePath + "/pkg/secp256k1",
	modulePath + "/pkg/rfc6979",
	modulePath + "/pkg/ecdsa",
	modulePath + "/pkg/k1",
}

func loadChecked(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, checkedPackages...)
	require.NoError(t, err, "load packages")
	require.Len(t, pkgs, len(checkedPackages))
	for _, pkg := range pkgs {
		require.Empty(t, pkg.Errors, "package %s has errors", pkg.PkgPath)
	}
	return pkgs
}

// inspect walks every file of pkgs and collects the findings reported by
// visit.
func inspect(pkgs []*packages.Package, visit func(pkg *packages.Package, n ast.Node) string) []string {
	var findings []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				if n == nil {
					return true
				}
				if msg := visit(pkg, n); msg != "" {
					findings = append(findings, fmt.Sprintf("%s: %s", pkg.Fset.Position(n.Pos()), msg))
				}
				return true
			})
		}
	}
	return findings
}

// calledFunc resolves the package path and name of the function a call
// expression invokes through a selector, as in fmt.Sprintf.
func calledFunc(pkg *packages.Package, call *ast.CallExpr) (string, string, bool) {
	selector, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", "", false
	}
	obj := pkg.TypesInfo.Uses[selector.Sel]
	if obj == nil || obj.Pkg() == nil {
		return "", "", false
	}
	return obj.Pkg().Path(), obj.Name(), true
}

func report(t *testing.T, policy string, findings []string) {
	t.Helper()
	if len(findings) > 0 {
		t.Fatalf("%s policy violation:\n%s", policy, strings.Join(findings, "\n"))
	}
}
