package hand

import (
	"strings"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// groupNode is a persistent list cell. Branches share their common prefix and
// never modify it, so extending an arrangement costs one allocation.
type groupNode struct {
	group Group
	prev  *groupNode
	size  int
}

// HandArrangement splits concealed tiles into complete groups and at most one wait.
type HandArrangement struct {
	groups  *groupNode
	wait    *Wait
	hasPair bool
}

// Groups returns a fresh slice of the committed groups in commit order.
func (a HandArrangement) Groups() []Group {
	if a.groups == nil {
		return []Group{}
	}
	res := make([]Group, a.groups.size)
	i := len(res) - 1
	for n := a.groups; n != nil; n = n.prev {
		res[i] = n.group
		i--
	}
	return res
}

func (a HandArrangement) Wait() (Wait, bool) {
	if a.wait == nil {
		return Wait{}, false
	}
	return *a.wait, true
}

func (a HandArrangement) HasPair() bool {
	return a.hasPair
}

func (a HandArrangement) withGroup(g Group) HandArrangement {
	size := 1
	if a.groups != nil {
		size = a.groups.size + 1
	}
	return HandArrangement{
		groups:  &groupNode{group: g, prev: a.groups, size: size},
		wait:    a.wait,
		hasPair: a.hasPair || g.IsPair(),
	}
}

func (a HandArrangement) withWait(w *Wait) HandArrangement {
	return HandArrangement{groups: a.groups, wait: w, hasPair: a.hasPair}
}

func (a HandArrangement) String() string {
	var sb strings.Builder
	for _, g := range a.Groups() {
		sb.WriteString(g.String())
		sb.WriteByte(' ')
	}
	if w, ok := a.Wait(); ok {
		sb.WriteString(w.String())
	} else {
		sb.WriteString("no wait")
	}
	return sb.String()
}

// Tiles returns every tile of the arrangement, groups first then the wait.
func (a HandArrangement) Tiles() []mahjong.Tile {
	var tiles []mahjong.Tile
	for _, g := range a.Groups() {
		tiles = append(tiles, g.Tiles()...)
	}
	if a.wait != nil {
		tiles = append(tiles, a.wait.tiles...)
	}
	return tiles
}
