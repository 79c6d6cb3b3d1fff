package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// The root is drawn as a circle, every other node as a box labeled with its
// id, its sibling position and the number of data entries it carries. Edges
// run from parent to child in sibling order.
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\t\"#root\" [label=\"\",shape=circle,style=filled,fillcolor=\"#a3d7e4\",fixedsize=true,width=.4];\n")
	var nodelist, edgelist strings.Builder
	err := t.EachNode(Root, DFS, func(id NodeID, depth int) error {
		if !id.IsRoot() {
			n := t.store[id]
			label := fmt.Sprintf("%s\\n[%d] #d=%d", dotEscape(id.Name()), n.index, len(n.data))
			fmt.Fprintf(&nodelist, "\t\"%s\" [label=\"%s\",shape=box,style=filled];\n",
				dotEscape(id.Name()), label)
		}
		for _, child := range t.orderedChildren(id) {
			fmt.Fprintf(&edgelist, "\t\"%s\" -> \"%s\";\n", dotName(id), dotName(child))
		}
		return nil
	})
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func dotName(id NodeID) string {
	if id.IsRoot() {
		return "#root"
	}
	return dotEscape(id.Name())
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
