// Package dot renders the groups of a board as a graphviz graph.
package dot

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/pkg/errors"
)

type groupNode struct {
	wq.Group
	ID int
}

func (n groupNode) Anchor() string { return n.Stones[0].Vertex() }

func (n groupNode) Size() int { return len(n.Stones) }

func (n groupNode) Libs() int { return len(n.Liberties) }

func (n groupNode) Atari() bool { return len(n.Liberties) == 1 }

// Groups returns a DOT graph with one node per group on the board. Groups of opposite colours that touch are joined by
// an (undirected) edge.
func Groups(b *wq.Board) (string, error) {
	if b == nil {
		return "", errors.New("Cannot graph a nil board")
	}
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(false); err != nil {
		return "", errors.WithStack(err)
	}

	groups := b.Groups()
	owner := make(map[wq.Pos]int)
	var buf bytes.Buffer
	for i, grp := range groups {
		n := groupNode{Group: grp, ID: i}
		for _, s := range grp.Stones {
			owner[s] = i
		}

		buf.Reset()
		if err := tmpl.Execute(&buf, n); err != nil {
			return "", errors.Wrapf(err, "Unable to render group %d", i)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		if err := g.AddNode("G", nodeName(i), attrs); err != nil {
			return "", errors.WithStack(err)
		}
	}

	for i, grp := range groups {
		seen := make(map[int]bool)
		for _, s := range grp.Stones {
			for _, n := range wq.Neighbours(s) {
				c := b.At(n)
				if c != game.Opponent(grp.Colour) {
					continue
				}
				j := owner[n]
				// each edge is added once, from the group with the lower id
				if j < i || seen[j] {
					continue
				}
				seen[j] = true
				if err := g.AddEdge(nodeName(i), nodeName(j), false, nil); err != nil {
					return "", errors.WithStack(err)
				}
			}
		}
	}
	return g.String(), nil
}

func nodeName(id int) string { return fmt.Sprintf("g%d", id) }

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Group</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Colour</TD><TD>{{printf "%v" .Colour}}</TD></TR>
<TR><TD>Anchor</TD><TD>{{.Anchor}}</TD></TR>
<TR><TD>Stones</TD><TD>{{.Size}}</TD></TR>
<TR><TD>Liberties</TD><TD>{{.Libs}}{{if .Atari}} (atari){{end}}</TD></TR>
</TABLE>
>`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("group").Parse(tmplRaw))
}
