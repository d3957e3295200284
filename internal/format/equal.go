package format

import (
	"fmt"
	"math"

	"txtpb/internal/ast"
)

type side struct {
	b *ast.Builder
}

// Diff compares two trees structurally and describes the first difference,
// or returns "" when they are equivalent. Separators, whitespace, comments
// and the split of a string into concatenated fragments are not compared.
func Diff(a *ast.Builder, ra ast.MessageID, b *ast.Builder, rb ast.MessageID) string {
	return diffMessage("", side{a}, ra, side{b}, rb)
}

// Equal reports whether Diff finds no difference.
func Equal(a *ast.Builder, ra ast.MessageID, b *ast.Builder, rb ast.MessageID) bool {
	return Diff(a, ra, b, rb) == ""
}

func diffMessage(path string, a side, ma ast.MessageID, b side, mb ast.MessageID) string {
	fa := a.b.Messages.Get(ma).Fields
	fb := b.b.Messages.Get(mb).Fields
	if len(fa) != len(fb) {
		return fmt.Sprintf("%s: %d fields vs %d", orRoot(path), len(fa), len(fb))
	}
	for i := range fa {
		x, y := a.b.Fields.Get(fa[i]), b.b.Fields.Get(fb[i])
		nx, ny := x.Name.Render(a.b.Strings), y.Name.Render(b.b.Strings)
		p := path + "/" + nx
		switch {
		case nx != ny:
			return fmt.Sprintf("%s: field %d named %s vs %s", orRoot(path), i, nx, ny)
		case x.Name.Kind != y.Name.Kind:
			return fmt.Sprintf("%s: name kind %v vs %v", p, x.Name.Kind, y.Name.Kind)
		case x.Kind != y.Kind:
			return fmt.Sprintf("%s: field kind %v vs %v", p, x.Kind, y.Kind)
		}
		if d := diffValue(p, a, x.Value, b, y.Value); d != "" {
			return d
		}
	}
	return ""
}

func diffValue(path string, a side, va ast.ValueID, b side, vb ast.ValueID) string {
	x, y := a.b.Values.Get(va), b.b.Values.Get(vb)
	if x.Kind != y.Kind {
		return fmt.Sprintf("%s: value kind %v vs %v", path, x.Kind, y.Kind)
	}

	switch x.Kind {
	case ast.ValueMessage:
		mx, _ := a.b.Values.Message(va)
		my, _ := b.b.Values.Message(vb)
		if mx.Delim != my.Delim {
			return fmt.Sprintf("%s: delimiter %s vs %s", path, mx.Delim.Open(), my.Delim.Open())
		}
		return diffMessage(path, a, mx.Message, b, my.Message)

	case ast.ValueMessageList, ast.ValueScalarList:
		lx, _ := a.b.Values.List(va)
		ly, _ := b.b.Values.List(vb)
		if len(lx.Elems) != len(ly.Elems) {
			return fmt.Sprintf("%s: %d elements vs %d", path, len(lx.Elems), len(ly.Elems))
		}
		for i := range lx.Elems {
			if d := diffValue(fmt.Sprintf("%s[%d]", path, i), a, lx.Elems[i], b, ly.Elems[i]); d != "" {
				return d
			}
		}

	case ast.ValueString:
		sx, _ := a.b.Values.Str(va)
		sy, _ := b.b.Values.Str(vb)
		if sx.String() != sy.String() {
			return fmt.Sprintf("%s: string %q vs %q", path, sx.String(), sy.String())
		}

	case ast.ValueIdent, ast.ValueSignedIdent:
		ix, _ := a.b.Values.Ident(va)
		iy, _ := b.b.Values.Ident(vb)
		if a.b.Ident(ix.Name) != b.b.Ident(iy.Name) {
			return fmt.Sprintf("%s: identifier %s vs %s", path, a.b.Ident(ix.Name), b.b.Ident(iy.Name))
		}

	case ast.ValueNumber:
		nx, _ := a.b.Values.Number(va)
		ny, _ := b.b.Values.Number(vb)
		if !sameNumber(nx, ny) {
			return fmt.Sprintf("%s: number %s vs %s", path, nx.Text(), ny.Text())
		}
	}
	return ""
}

func sameNumber(x, y *ast.Number) bool {
	if x.Kind != y.Kind || x.Negative != y.Negative || x.Single != y.Single || x.Overflow != y.Overflow {
		return false
	}
	if x.Kind.IsInt() && !x.Overflow {
		return x.Uint == y.Uint
	}
	return x.Float == y.Float || (math.IsNaN(x.Float) && math.IsNaN(y.Float))
}

func orRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
