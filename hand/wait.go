package hand

import (
	"slices"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

type WaitKind int

const (
	WaitTanki   WaitKind = iota // 单骑
	WaitShanpon                 // 双碰
	WaitRyanmen                 // 两面
	WaitPenchan                 // 边张
	WaitKanchan                 // 嵌张
)

func (k WaitKind) String() string {
	switch k {
	case WaitTanki:
		return "tanki"
	case WaitShanpon:
		return "shanpon"
	case WaitRyanmen:
		return "ryanmen"
	case WaitPenchan:
		return "penchan"
	case WaitKanchan:
		return "kanchan"
	default:
		return "unknown"
	}
}

// Wait is a group missing exactly one tile.
type Wait struct {
	kind   WaitKind
	tiles  []mahjong.Tile
	values []mahjong.TileValue
}

func newWait(kind WaitKind, tiles []mahjong.Tile, values ...mahjong.TileValue) *Wait {
	return &Wait{kind: kind, tiles: tiles, values: values}
}

func (w Wait) Kind() WaitKind {
	return w.kind
}

func (w Wait) Tiles() []mahjong.Tile {
	return slices.Clone(w.tiles)
}

// CompletingValues are the values that would turn the wait into a full group.
func (w Wait) CompletingValues() []mahjong.TileValue {
	return slices.Clone(w.values)
}

func (w Wait) Completes(v mahjong.TileValue) bool {
	return slices.Contains(w.values, v)
}

func (w Wait) String() string {
	return w.kind.String() + "(" + mahjong.TilesName(w.tiles) + " on " + mahjong.ValuesName(w.values) + ")"
}
