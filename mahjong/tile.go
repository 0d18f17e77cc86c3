package mahjong

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

// Tile is one physical tile. The id tells apart the four copies of a value
// and is never used to match tiles into groups.
type Tile struct {
	value TileValue
	id    uint8
}

func NewTile(value TileValue, id int) (Tile, error) {
	if !value.IsValid() {
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidTileValue, int32(value))
	}
	if id < 0 || id >= CopiesPerValue {
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidTileID, id)
	}
	return Tile{value: value, id: uint8(id)}, nil
}

func MustTile(value TileValue, id int) Tile {
	t, err := NewTile(value, id)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tile) Value() TileValue {
	return t.value
}

func (t Tile) ID() int {
	return int(t.id)
}

func (t Tile) IsSuited() bool {
	return t.value.IsSuited()
}

func (t Tile) IsHonor() bool {
	return t.value.IsHonor()
}

func (t Tile) FollowedBy(other Tile) bool {
	return t.value.FollowedBy(other.value)
}

// Compare orders by value, then by copy id.
func (t Tile) Compare(other Tile) int {
	if c := t.value.Compare(other.value); c != 0 {
		return c
	}
	return cmp.Compare(t.id, other.id)
}

func (t Tile) Name() string {
	return t.value.Name()
}

func (t Tile) String() string {
	return t.value.Name() + "#" + strconv.Itoa(int(t.id))
}

// SortTiles sorts tiles into the ascending order FindWaits expects.
func SortTiles(tiles []Tile) {
	slices.SortStableFunc(tiles, Tile.Compare)
}

func IsSorted(tiles []Tile) bool {
	return slices.IsSortedFunc(tiles, func(a, b Tile) int {
		return a.value.Compare(b.value)
	})
}

// Values returns the value of each tile, in order.
func Values(tiles []Tile) []TileValue {
	res := make([]TileValue, len(tiles))
	for i, t := range tiles {
		res[i] = t.value
	}
	return res
}
