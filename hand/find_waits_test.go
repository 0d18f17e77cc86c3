package hand_test

import (
	"path/filepath"
	"slices"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/hand"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, notation string) []mahjong.Tile {
	t.Helper()
	tiles, err := mahjong.ParseTiles(notation)
	require.NoError(t, err)
	return tiles
}

func groupTypes(a hand.HandArrangement) []hand.GroupType {
	var types []hand.GroupType
	for _, g := range a.Groups() {
		types = append(types, g.Type())
	}
	return types
}

func TestFindWaitsTanki(t *testing.T) {
	white := mahjong.MustTile(mahjong.DragonValue(mahjong.DragonWhite), 0)

	arrangements := hand.FindWaits([]mahjong.Tile{white})
	require.Len(t, arrangements, 1)

	a := arrangements[0]
	assert.Empty(t, a.Groups())
	w, ok := a.Wait()
	require.True(t, ok)
	assert.Equal(t, hand.WaitTanki, w.Kind())
	assert.Equal(t, []mahjong.Tile{white}, w.Tiles())
	assert.Equal(t, []mahjong.TileValue{white.Value()}, w.CompletingValues())
}

func TestFindWaitsShanpon(t *testing.T) {
	white := mahjong.DragonValue(mahjong.DragonWhite)
	tiles := []mahjong.Tile{mahjong.MustTile(white, 0), mahjong.MustTile(white, 1)}

	arrangements := hand.FindWaits(tiles)
	require.Len(t, arrangements, 1)

	w, ok := arrangements[0].Wait()
	require.True(t, ok)
	assert.Equal(t, hand.WaitShanpon, w.Kind())
	assert.Equal(t, tiles, w.Tiles())
	assert.Equal(t, []mahjong.TileValue{white}, w.CompletingValues())
	assert.True(t, w.Completes(white))
	assert.Empty(t, arrangements[0].Groups())
}

func TestFindWaitsEmpty(t *testing.T) {
	assert.Empty(t, hand.FindWaits(nil))
	assert.Empty(t, hand.FindWaits(parse(t, "123m")), "complete shapes are not reported")
	assert.Empty(t, hand.FindWaits(parse(t, "1m2p")))
	assert.Empty(t, hand.FindWaits(parse(t, "1245m")))
}

func TestFindWaitsCounts(t *testing.T) {
	type Case struct {
		hand  string
		count int
		waits string
	}
	testCases := []Case{
		{"1112m", 2, "23m"},
		{"2223m", 2, "134m"},
		{"3334m", 2, "245m"},
		{"3445m", 2, "4m"},
		{"11123m", 3, "14m"},
		{"11m55z", 2, "1m5z"},
		{"111222333m55z", 2, "5z"},
		{"3334445m", 8, "3456m"},
		{"34m45556678p345s", 1, "25m"},
		{"1112345678999m", 15, "123456789m"},
		{"55m456p", 1, "5m"},
		{"123m11z", 1, "1z"},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			arrangements := hand.FindWaits(parse(t, tc.hand))
			assert.Len(t, arrangements, tc.count, "hand %s", tc.hand)
			assert.Equal(t, tc.waits, mahjong.ValuesName(hand.WaitingValues(arrangements)), "hand %s", tc.hand)
		})
	}
}

func TestFindWaitsKinds(t *testing.T) {
	type Case struct {
		hand string
		kind hand.WaitKind
	}
	testCases := []Case{
		{"5z", hand.WaitTanki},
		{"44z", hand.WaitShanpon},
		{"23m", hand.WaitRyanmen},
		{"12s", hand.WaitPenchan},
		{"89m", hand.WaitPenchan},
		{"13s", hand.WaitKanchan},
		{"24m", hand.WaitKanchan},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			arrangements := hand.FindWaits(parse(t, tc.hand))
			require.Len(t, arrangements, 1)
			w, ok := arrangements[0].Wait()
			require.True(t, ok)
			assert.Equal(t, tc.kind, w.Kind(), "hand %s", tc.hand)
		})
	}
}

func TestFindWaitsPinfu(t *testing.T) {
	arrangements := hand.FindWaits(parse(t, "34m45556678p345s"))
	require.Len(t, arrangements, 1)

	a := arrangements[0]
	assert.Equal(t, []hand.GroupType{hand.GroupSequence, hand.GroupPair, hand.GroupSequence, hand.GroupSequence}, groupTypes(a))
	assert.Equal(t, "456p", mahjong.TilesName(a.Groups()[0].Tiles()))
	assert.Equal(t, "678p", mahjong.TilesName(a.Groups()[2].Tiles()))

	w, ok := a.Wait()
	require.True(t, ok)
	assert.Equal(t, hand.WaitRyanmen, w.Kind())
	assert.Equal(t, "34m", mahjong.TilesName(w.Tiles()))
	assert.Equal(t, "25m", mahjong.ValuesName(w.CompletingValues()))
}

func TestFindWaitsSequenceSkipsCopies(t *testing.T) {
	// 3445m: the sequence takes the first 4m and leaves the second one waiting
	arrangements := hand.FindWaits(parse(t, "3445m"))
	require.Len(t, arrangements, 2)

	first := arrangements[0]
	assert.Equal(t, []hand.GroupType{hand.GroupSequence}, groupTypes(first))
	g := first.Groups()[0]
	assert.Equal(t, "345m", mahjong.TilesName(g.Tiles()))
	assert.Equal(t, 0, g.Tiles()[1].ID())

	w, ok := first.Wait()
	require.True(t, ok)
	assert.Equal(t, hand.WaitTanki, w.Kind())
	assert.Equal(t, 1, w.Tiles()[0].ID())

	second := arrangements[1]
	assert.Equal(t, []hand.GroupType{hand.GroupPair}, groupTypes(second))
	w, ok = second.Wait()
	require.True(t, ok)
	assert.Equal(t, hand.WaitKanchan, w.Kind())
	assert.Equal(t, "35m", mahjong.TilesName(w.Tiles()))
}

func TestFindWaitsPairExclusivity(t *testing.T) {
	// with a pair already committed, neither a second pair nor a single tile wait is allowed
	assert.Empty(t, hand.FindWaits(parse(t, "11m5z")))

	arrangements := hand.FindWaits(parse(t, "111m1z"))
	require.Len(t, arrangements, 1)
	assert.Equal(t, []hand.GroupType{hand.GroupTriplet}, groupTypes(arrangements[0]))
	w, ok := arrangements[0].Wait()
	require.True(t, ok)
	assert.Equal(t, hand.WaitTanki, w.Kind(), "a tanki wait is allowed next to non-pair groups")

	for _, a := range hand.FindWaits(parse(t, "1112345678999m")) {
		pairs := 0
		for _, g := range a.Groups() {
			if g.IsPair() {
				pairs++
			}
		}
		assert.LessOrEqual(t, pairs, 1)
		assert.Equal(t, pairs == 1, a.HasPair())
	}
}

func TestFindWaitsKeepsDuplicates(t *testing.T) {
	arrangements := hand.FindWaits(parse(t, "11123m"))
	require.Len(t, arrangements, 3)
	assert.Equal(t, arrangements[1].Key(), arrangements[2].Key())
	assert.Len(t, hand.Distinct(arrangements), 2)
}

func TestFindWaitsProperties(t *testing.T) {
	m, err := mahjong.LoadManual(filepath.Join("testdata", "hands.yaml"))
	require.NoError(t, err)

	for _, h := range m.Hands() {
		t.Run(h.Name, func(t *testing.T) {
			input := slices.Clone(h.Tiles)
			arrangements := hand.FindWaits(h.Tiles)
			assert.Equal(t, input, h.Tiles, "input must not be modified")

			if h.HasWaits {
				assert.Equal(t, mahjong.ValuesName(h.Waits), mahjong.ValuesName(hand.WaitingValues(arrangements)))
			}

			for _, a := range arrangements {
				_, ok := a.Wait()
				assert.True(t, ok, "every result carries a wait")

				got := a.Tiles()
				mahjong.SortTiles(got)
				assert.Equal(t, input, got, "arrangement %s must use every tile once", a)

				pairs := 0
				for _, g := range a.Groups() {
					if g.IsPair() {
						pairs++
					}
				}
				assert.LessOrEqual(t, pairs, 1)
			}

			again := hand.FindWaits(h.Tiles)
			require.Len(t, again, len(arrangements))
			for i := range again {
				assert.Equal(t, arrangements[i].String(), again[i].String())
				assert.Equal(t, arrangements[i].Tiles(), again[i].Tiles())
			}
		})
	}
}
