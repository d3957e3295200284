package diagfmt

import (
	"fmt"
	"io"

	"txtpb/internal/ast"
	"txtpb/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTTree печатает дерево документа с псевдографикой ├─ └─.
func FormatASTTree(w io.Writer, builder *ast.Builder, root ast.MessageID, fs *source.FileSet) error {
	msg := builder.Messages.Get(root)
	if msg == nil {
		return fmt.Errorf("message %d not found", root)
	}
	header := "Document"
	if fs != nil {
		header = fs.Get(msg.Span.File).FormatPath("auto", fs.BaseDir())
	}
	node := &treeNode{label: header}
	node.children = buildFieldNodes(builder, root)
	return writeTree(w, node)
}

func buildFieldNodes(b *ast.Builder, id ast.MessageID) []*treeNode {
	var nodes []*treeNode
	for _, fid := range b.Messages.Get(id).Fields {
		f := b.Fields.Get(fid)
		label := fmt.Sprintf("%s (%s", f.Name.Render(b.Strings), f.Kind)
		if f.Name.Kind != ast.NameIdent {
			label += ", " + f.Name.Kind.String()
		}
		label += ")"
		node := &treeNode{label: label}
		node.children = append(node.children, buildValueNode(b, f.Value))
		nodes = append(nodes, node)
	}
	return nodes
}

func buildValueNode(b *ast.Builder, id ast.ValueID) *treeNode {
	node := &treeNode{label: describeValue(b, id)}
	val := b.Values.Get(id)
	switch val.Kind {
	case ast.ValueMessage:
		mv, _ := b.Values.Message(id)
		node.children = buildFieldNodes(b, mv.Message)
	case ast.ValueMessageList, ast.ValueScalarList:
		list, _ := b.Values.List(id)
		for _, e := range list.Elems {
			node.children = append(node.children, buildValueNode(b, e))
		}
	}
	return node
}

func writeTree(w io.Writer, root *treeNode) error {
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	return writeChildren(w, root.children, "")
}

func writeChildren(w io.Writer, children []*treeNode, prefix string) error {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label); err != nil {
			return err
		}
		if err := writeChildren(w, child.children, prefix+next); err != nil {
			return err
		}
	}
	return nil
}
