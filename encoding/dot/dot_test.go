package dot

import (
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/stretchr/testify/assert"
)

func place(t *testing.T, b *wq.Board, c game.Colour, xys ...int) *wq.Board {
	t.Helper()
	for i := 0; i < len(xys); i += 2 {
		var err error
		if b, err = b.WithCell(wq.MustOf(xys[i], xys[i+1]), c); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func TestGroups(t *testing.T) {
	// ⎢ X X O · · ⎥
	// ⎢ · · O · X ⎥
	b := place(t, wq.Empty(), game.Black, 0, 0, 1, 0, 4, 1)
	b = place(t, b, game.White, 2, 0, 2, 1)

	s, err := Groups(b)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", s)

	g, err := gographviz.Read([]byte(s))
	if err != nil {
		t.Fatalf("Unable to read back graph: %v", err)
	}
	assert := assert.New(t)
	assert.Len(g.Nodes.Nodes, 3)
	assert.Len(g.Edges.Edges, 1, "only the two stone black group touches the white group")
	e := g.Edges.Edges[0]
	assert.Equal("g0", e.Src)
	assert.Equal("g1", e.Dst)
	assert.True(strings.Contains(s, "A19"), "The first group is anchored at A19")
}

func TestGroups_Empty(t *testing.T) {
	s, err := Groups(wq.Empty())
	assert.NoError(t, err)
	g, err := gographviz.Read([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, g.Nodes.Nodes, 0)

	_, err = Groups(nil)
	assert.Error(t, err)
}

func TestGroups_Atari(t *testing.T) {
	// a white stone in atari in the corner
	b := place(t, wq.Empty(), game.White, 0, 0)
	b = place(t, b, game.Black, 1, 0)
	s, err := Groups(b)
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, s, "(atari)")
}
