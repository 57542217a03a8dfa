package splayrope

import (
	"fmt"
	"io"
	"strings"
)

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their symbol and subtree
// size and shaded by depth.
func Rope2Dot[S any](r *Rope[S], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	if !r.IsVoid() {
		a := r.store
		type entry struct {
			x     nodeIndex
			depth int
		}
		stack := []entry{{r.root, 0}}
		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := a.nodes[e.x]
			var sym strings.Builder
			writeSymbol(&sym, n.payload)
			label := fmt.Sprintf("%s\\n%d", dotEscape(sym.String()), n.size)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", e.x, label, nodeDotStyles(e.depth))
			for i, c := range [2]nodeIndex{n.left, n.right} {
				if c == none {
					nilid := fmt.Sprintf("nil%d_%d", e.x, i)
					fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", e.x, nilid)
					continue
				}
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", e.x, c)
				stack = append(stack, entry{c, e.depth + 1})
			}
		}
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(depth int) string {
	if depth >= len(hexcolors) {
		depth = len(hexcolors) - 1
	}
	return fmt.Sprintf(",style=filled,shape=circle,color=black,fillcolor=\"%s\"", hexcolors[depth])
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
