package hand

import "github.com/kevin-chtw/tw_riichi/mahjong"

// Meld is an open group completed with a tile called from another player's discard.
type Meld struct {
	group  Group
	called mahjong.Tile
	source mahjong.Wind
}

func NewMeld(group Group, called mahjong.Tile, source mahjong.Wind) Meld {
	return Meld{group: group, called: called, source: source}
}

func (m Meld) Group() Group {
	return m.group
}

func (m Meld) Tiles() []mahjong.Tile {
	return m.group.Tiles()
}

func (m Meld) CalledTile() mahjong.Tile {
	return m.called
}

// Source is the seat wind of the player who discarded the called tile.
func (m Meld) Source() mahjong.Wind {
	return m.source
}
