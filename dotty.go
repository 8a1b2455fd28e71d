package treemap

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of the map in Graphviz DOT format
// (for debugging purposes). Empty branches left behind by Delete show up as
// childless nodes.
func (t *tree[V]) ToDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString("\t\"0\" [label=\"root\" shape=box];\n")
	ids := 0
	var walk func(n *node[V], id, level int)
	walk = func(n *node[V], id, level int) {
		for s := n.head; s != nil; s = s.next {
			ids++
			child := ids
			if level == t.depth-1 {
				label := dotEscape(fmt.Sprintf("%v = %v", s.component, s.value))
				fmt.Fprintf(&b, "\t\"%d\" [label=\"%s\" style=filled fillcolor=lightgrey];\n", child, label)
			} else {
				fmt.Fprintf(&b, "\t\"%d\" [label=\"%s\"];\n", child, dotEscape(fmt.Sprintf("%v", s.component)))
			}
			fmt.Fprintf(&b, "\t\"%d\" -> \"%d\";\n", id, child)
			if s.child != nil {
				walk(s.child, child, level+1)
			}
		}
	}
	walk(t.root, 0, 0)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
