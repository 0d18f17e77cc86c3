package hand

import "github.com/kevin-chtw/tw_riichi/mahjong"

// extractor strips one shape from the front of tiles. It reports false when the
// shape does not apply.
type extractor func(a HandArrangement, tiles []mahjong.Tile) (HandArrangement, []mahjong.Tile, bool)

var (
	groupExtractors = []extractor{
		extractTriplet,
		extractPair,
		extractSequence,
	}
	waitExtractors = []extractor{
		extractTripletWait,
		extractSideWait,
		extractMiddleWait,
		extractPairWait,
	}
)

// FindWaits returns every way to split sorted into complete groups plus exactly
// one wait. sorted must be in ascending value order; it is not modified.
// Arrangements reached through different extraction orders are all returned,
// duplicates included. A hand with no tenpai shape yields an empty result.
func FindWaits(sorted []mahjong.Tile) []HandArrangement {
	return HandArrangement{}.consume(sorted)
}

func (a HandArrangement) consume(tiles []mahjong.Tile) []HandArrangement {
	if len(tiles) == 0 {
		if a.wait != nil {
			return []HandArrangement{a}
		}
		return nil
	}

	var res []HandArrangement
	for _, ex := range groupExtractors {
		res = a.extract(tiles, res, ex)
	}
	if a.wait == nil {
		for _, ex := range waitExtractors {
			res = a.extract(tiles, res, ex)
		}
	}
	return res
}

func (a HandArrangement) extract(tiles []mahjong.Tile, res []HandArrangement, ex extractor) []HandArrangement {
	next, rest, ok := ex(a, tiles)
	if !ok {
		return res
	}
	return append(res, next.consume(rest)...)
}

// without returns tiles minus the given ascending indices, in a new slice.
func without(tiles []mahjong.Tile, indices ...int) []mahjong.Tile {
	res := make([]mahjong.Tile, 0, len(tiles)-len(indices))
	k := 0
	for i, t := range tiles {
		if k < len(indices) && indices[k] == i {
			k++
			continue
		}
		res = append(res, t)
	}
	return res
}

func extractTriplet(a HandArrangement, tiles []mahjong.Tile) (HandArrangement, []mahjong.Tile, bool) {
	if len(tiles) < 3 || !sameValue(tiles[0], tiles[1], tiles[2]) {
		return a, nil, false
	}
	return a.withGroup(makeGroup(GroupTriplet, tiles[0], tiles[1], tiles[2])), tiles[3:], true
}

func extractPair(a HandArrangement, tiles []mahjong.Tile) (HandArrangement, []mahjong.Tile, bool) {
	if a.hasPair || len(tiles) < 2 || !sameValue(tiles[0], tiles[1]) {
		return a, nil, false
	}
	return a.withGroup(makeGroup(GroupPair, tiles[0], tiles[1])), tiles[2:], true
}

// extractSequence anchors on the first tile and looks past copies of each
// member for the next one, so 3445m yields 345m and leaves a 4m.
func extractSequence(a HandArrangement, tiles []mahjong.Tile) (HandArrangement, []mahjong.Tile, bool) {
	if len(tiles) < 3 || !tiles[0].IsSuited() {
		return a, nil, false
	}
	first := tiles[0]

	i := 1
	for i < len(tiles) && tiles[i].Value() == first.Value() {
		i++
	}
	// the second member needs at least one tile after it
	if i >= len(tiles)-1 || !first.FollowedBy(tiles[i]) {
		return a, nil, false
	}
	second := tiles[i]

	j := i + 1
	for j < len(tiles) && tiles[j].Value() == second.Value() {
		j++
	}
	if j >= len(tiles) || !second.FollowedBy(tiles[j]) {
		return a, nil, false
	}
	third := tiles[j]

	return a.withGroup(makeGroup(GroupSequence, first, second, third)), without(tiles, 0, i, j), true
}

func extractTripletWait(a HandArrangement, tiles []mahjong.Tile) (HandArrangement, []mahjong.Tile, bool) {
	if len(tiles) < 2 || !sameValue(tiles[0], tiles[1]) {
		return a, nil, false
	}
	w := newWait(WaitShanpon, []mahjong.Tile{tiles[0], tiles[1]}, tiles[0].Value())
	return a.withWait(w), tiles[2:], true
}

func extractSideWait(a HandArrangement, tiles []mahjong.Tile) (HandArrangement, []mahjong.Tile, bool) {
	if len(tiles) < 2 || !tiles[0].FollowedBy(tiles[1]) {
		return a, nil, false
	}
	var values []mahjong.TileValue
	if v, ok := tiles[0].Value().Prev(); ok {
		values = append(values, v)
	}
	if v, ok := tiles[1].Value().Next(); ok {
		values = append(values, v)
	}
	kind := WaitRyanmen
	if len(values) == 1 {
		kind = WaitPenchan
	}
	w := newWait(kind, []mahjong.Tile{tiles[0], tiles[1]}, values...)
	return a.withWait(w), tiles[2:], true
}

func extractMiddleWait(a HandArrangement, tiles []mahjong.Tile) (HandArrangement, []mahjong.Tile, bool) {
	if len(tiles) < 2 || !tiles[0].IsSuited() {
		return a, nil, false
	}
	first := tiles[0]
	middle, ok := first.Value().Next()
	if !ok {
		return a, nil, false
	}
	target, ok := middle.Next()
	if !ok {
		return a, nil, false
	}

	i := 1
	for i < len(tiles) && tiles[i].Value() < target {
		i++
	}
	if i >= len(tiles) || tiles[i].Value() != target {
		return a, nil, false
	}
	w := newWait(WaitKanchan, []mahjong.Tile{first, tiles[i]}, middle)
	return a.withWait(w), without(tiles, 0, i), true
}

// extractPairWait leaves a single tile waiting for its pair. A hand that
// already holds a pair group cannot also wait on one.
func extractPairWait(a HandArrangement, tiles []mahjong.Tile) (HandArrangement, []mahjong.Tile, bool) {
	if a.hasPair || len(tiles) < 1 {
		return a, nil, false
	}
	w := newWait(WaitTanki, []mahjong.Tile{tiles[0]}, tiles[0].Value())
	return a.withWait(w), tiles[1:], true
}
