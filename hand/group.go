package hand

import (
	"errors"
	"fmt"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

var ErrInvalidGroup = errors.New("invalid group")

type GroupType int

const (
	GroupTriplet  GroupType = iota // 刻子
	GroupSequence                  // 顺子
	GroupPair                      // 对子
	GroupQuad                      // 杠
)

func (g GroupType) String() string {
	switch g {
	case GroupTriplet:
		return "triplet"
	case GroupSequence:
		return "sequence"
	case GroupPair:
		return "pair"
	case GroupQuad:
		return "quad"
	default:
		return "unknown"
	}
}

// Group is a closed meld shape held in the hand.
type Group struct {
	typ   GroupType
	tiles [4]mahjong.Tile
	count uint8
}

func makeGroup(typ GroupType, tiles ...mahjong.Tile) Group {
	g := Group{typ: typ, count: uint8(len(tiles))}
	copy(g.tiles[:], tiles)
	return g
}

func NewTriplet(a, b, c mahjong.Tile) (Group, error) {
	if !sameValue(a, b, c) {
		return Group{}, fmt.Errorf("%w: triplet %s", ErrInvalidGroup, mahjong.TilesName([]mahjong.Tile{a, b, c}))
	}
	return makeGroup(GroupTriplet, a, b, c), nil
}

func NewSequence(a, b, c mahjong.Tile) (Group, error) {
	if !a.FollowedBy(b) || !b.FollowedBy(c) {
		return Group{}, fmt.Errorf("%w: sequence %s", ErrInvalidGroup, mahjong.TilesName([]mahjong.Tile{a, b, c}))
	}
	return makeGroup(GroupSequence, a, b, c), nil
}

func NewPair(a, b mahjong.Tile) (Group, error) {
	if !sameValue(a, b) {
		return Group{}, fmt.Errorf("%w: pair %s", ErrInvalidGroup, mahjong.TilesName([]mahjong.Tile{a, b}))
	}
	return makeGroup(GroupPair, a, b), nil
}

func NewQuad(a, b, c, d mahjong.Tile) (Group, error) {
	if !sameValue(a, b, c, d) {
		return Group{}, fmt.Errorf("%w: quad %s", ErrInvalidGroup, mahjong.TilesName([]mahjong.Tile{a, b, c, d}))
	}
	return makeGroup(GroupQuad, a, b, c, d), nil
}

func sameValue(tiles ...mahjong.Tile) bool {
	for _, t := range tiles {
		if !t.Value().IsValid() || t.Value() != tiles[0].Value() {
			return false
		}
	}
	return true
}

func (g Group) Type() GroupType {
	return g.typ
}

func (g Group) IsPair() bool {
	return g.typ == GroupPair
}

// Tiles returns the member tiles in construction order.
func (g Group) Tiles() []mahjong.Tile {
	return append([]mahjong.Tile(nil), g.tiles[:g.count]...)
}

// Value is the value of the first tile, the lowest one for a sequence.
func (g Group) Value() mahjong.TileValue {
	return g.tiles[0].Value()
}

func (g Group) String() string {
	return g.typ.String() + "(" + mahjong.TilesName(g.tiles[:g.count]) + ")"
}
