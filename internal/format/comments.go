package format

import "txtpb/internal/ast"

// countComments считает все '#'-строки, привязанные к дереву.
func countComments(b *ast.Builder, root ast.MessageID) int {
	msg := b.Messages.Get(root)
	if msg == nil {
		return 0
	}
	n := len(msg.Trailing)
	for _, fid := range msg.Fields {
		f := b.Fields.Get(fid)
		n += len(f.Comments) + countValueComments(b, f.Value)
	}
	return n
}

func countValueComments(b *ast.Builder, id ast.ValueID) int {
	val := b.Values.Get(id)
	if val == nil {
		return 0
	}
	n := len(val.Comments)
	switch val.Kind {
	case ast.ValueMessage:
		mv, _ := b.Values.Message(id)
		n += countComments(b, mv.Message)
	case ast.ValueMessageList, ast.ValueScalarList:
		list, _ := b.Values.List(id)
		n += len(list.Trailing)
		for _, e := range list.Elems {
			n += countValueComments(b, e)
		}
	}
	return n
}
