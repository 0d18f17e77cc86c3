package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTiles(t *testing.T) {
	tiles, err := mahjong.ParseTiles("7z 55m1z3m5m")
	require.NoError(t, err)
	require.Len(t, tiles, 6)
	assert.True(t, mahjong.IsSorted(tiles))
	assert.Equal(t, "3555m17z", mahjong.TilesName(tiles))

	assert.Equal(t, man(5), tiles[1].Value())
	assert.Equal(t, []int{0, 1, 2}, []int{tiles[1].ID(), tiles[2].ID(), tiles[3].ID()})
	assert.Equal(t, mahjong.WindValue(mahjong.WindEast), tiles[4].Value())
	assert.Equal(t, mahjong.DragonValue(mahjong.DragonRed), tiles[5].Value())
}

func TestParseTilesRoundTrip(t *testing.T) {
	for _, notation := range []string{"123m456p789s1234576z", "1112345678999m", "34m45556678p345s", "5z"} {
		tiles, err := mahjong.ParseTiles(notation)
		require.NoError(t, err)
		assert.Equal(t, notation, mahjong.TilesName(tiles))
	}
}

func TestParseTilesErrors(t *testing.T) {
	type Case struct {
		notation string
		want     error
	}
	testCases := []Case{
		{"123", mahjong.ErrInvalidNotation},
		{"m", mahjong.ErrInvalidNotation},
		{"12x", mahjong.ErrInvalidNotation},
		{"12 3m", mahjong.ErrInvalidNotation},
		{"0m", mahjong.ErrInvalidTileValue},
		{"8z", mahjong.ErrInvalidTileValue},
		{"11111m", mahjong.ErrTooManyCopies},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			_, err := mahjong.ParseTiles(tc.notation)
			assert.ErrorIs(t, err, tc.want, "notation %q", tc.notation)
		})
	}
	assert.Panics(t, func() { mahjong.MustParseTiles("9") })
}

func TestParseHand(t *testing.T) {
	tiles, err := mahjong.ParseHand("111234555678999m")
	assert.ErrorIs(t, err, mahjong.ErrTooManyTiles)
	assert.Nil(t, tiles)

	tiles, err = mahjong.ParseHand("1111222233334444555566667777888899m1z")
	assert.ErrorIs(t, err, mahjong.ErrTooManyTiles)
	assert.Nil(t, tiles)

	tiles, err = mahjong.ParseHand("11234555678999m")
	require.NoError(t, err)
	assert.Len(t, tiles, mahjong.MaxHandTiles)

	_, err = mahjong.ParseHand("11111m")
	assert.ErrorIs(t, err, mahjong.ErrTooManyCopies)
}

func TestParseValue(t *testing.T) {
	v, err := mahjong.ParseValue(" 6z ")
	require.NoError(t, err)
	assert.Equal(t, mahjong.DragonValue(mahjong.DragonGreen), v)
	assert.Equal(t, "6z", v.Name())

	v, err = mahjong.ParseValue("9p")
	require.NoError(t, err)
	assert.Equal(t, pin(9), v)

	_, err = mahjong.ParseValue("10m")
	assert.ErrorIs(t, err, mahjong.ErrInvalidNotation)
	_, err = mahjong.ParseValue("xm")
	assert.ErrorIs(t, err, mahjong.ErrInvalidNotation)
}

func TestValuesName(t *testing.T) {
	values := []mahjong.TileValue{man(1), man(4), pin(7), mahjong.WindValue(mahjong.WindWest)}
	assert.Equal(t, "14m7p3z", mahjong.ValuesName(values))
	assert.Equal(t, "", mahjong.ValuesName(nil))
}
