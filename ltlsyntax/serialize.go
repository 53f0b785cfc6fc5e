package ltlsyntax

import "strings"

// Serialize produces a deterministic, order-sensitive textual encoding of a
// node, used both as the hash-cons Cache key and as the stable sort key
// Canonical uses to order AND/OR spines (original_source/rewrt.c's
// `sdump`/`DoDump`, which serializes a subtree into a symbol-table lookup
// key for the same purpose).
func Serialize(n *Node, preds *PredicateTable) string {
	var b strings.Builder
	serialize(&b, n, preds)
	return b.String()
}

func serialize(b *strings.Builder, n *Node, preds *PredicateTable) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindTrue:
		b.WriteString("T")
	case KindFalse:
		b.WriteString("F")
	case KindLiteral:
		if n.Neg {
			b.WriteByte('!')
		}
		b.WriteString(preds.Name(n.Pred))
	case KindNot:
		b.WriteByte('!')
		serialize(b, n.Left, preds)
	case KindNext:
		b.WriteByte('X')
		serialize(b, n.Left, preds)
	case KindAlways:
		b.WriteByte('G')
		serialize(b, n.Left, preds)
	case KindEventually:
		b.WriteByte('F')
		serialize(b, n.Left, preds)
	default:
		b.WriteByte('(')
		serialize(b, n.Left, preds)
		b.WriteString(n.Kind.String())
		serialize(b, n.Right, preds)
		b.WriteByte(')')
	}
}
