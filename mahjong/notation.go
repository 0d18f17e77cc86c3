package mahjong

import (
	"fmt"
	"strings"
)

// 字牌 z 编号: 1-4 东南西北, 5 白, 6 发, 7 中
var honorDigit = map[Honor]int{
	HonorEast:  1,
	HonorSouth: 2,
	HonorWest:  3,
	HonorNorth: 4,
	HonorWhite: 5,
	HonorGreen: 6,
	HonorRed:   7,
}

var digitHonor = map[int]Honor{
	1: HonorEast,
	2: HonorSouth,
	3: HonorWest,
	4: HonorNorth,
	5: HonorWhite,
	6: HonorGreen,
	7: HonorRed,
}

var letterSuit = map[byte]Suit{
	'm': SuitMan,
	'p': SuitPin,
	's': SuitSou,
}

// ParseValue parses a single value such as "7p" or "1z".
func ParseValue(name string) (TileValue, error) {
	name = strings.TrimSpace(name)
	if len(name) != 2 {
		return ValueNull, fmt.Errorf("%w: %q", ErrInvalidNotation, name)
	}
	return digitValue(name[0], name[1])
}

func digitValue(digit, letter byte) (TileValue, error) {
	if digit < '0' || digit > '9' {
		return ValueNull, fmt.Errorf("%w: %q", ErrInvalidNotation, string([]byte{digit, letter}))
	}
	n := int(digit - '0')
	if suit, ok := letterSuit[letter]; ok {
		return NewSuited(suit, n)
	}
	if letter == 'z' {
		if h, ok := digitHonor[n]; ok {
			return FromHonor(h), nil
		}
		return ValueNull, fmt.Errorf("%w: %dz", ErrInvalidTileValue, n)
	}
	return ValueNull, fmt.Errorf("%w: unknown suit %q", ErrInvalidNotation, letter)
}

// ParseTiles parses compact notation like "123m456p789s11z" into sorted tiles.
// Copies of the same value get ids 0..3 in the order they appear.
func ParseTiles(notation string) ([]Tile, error) {
	var (
		tiles  []Tile
		digits []byte
		copies = make(map[TileValue]int)
	)
	for i := 0; i < len(notation); i++ {
		c := notation[i]
		switch {
		case c == ' ' || c == ',' || c == '\t':
			if len(digits) > 0 {
				return nil, fmt.Errorf("%w: digits without suit before position %d", ErrInvalidNotation, i)
			}
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		default:
			if len(digits) == 0 {
				return nil, fmt.Errorf("%w: suit %q without digits at position %d", ErrInvalidNotation, c, i)
			}
			for _, d := range digits {
				v, err := digitValue(d, c)
				if err != nil {
					return nil, err
				}
				if copies[v] >= CopiesPerValue {
					return nil, fmt.Errorf("%w: %s", ErrTooManyCopies, v.Name())
				}
				tiles = append(tiles, Tile{value: v, id: uint8(copies[v])})
				copies[v]++
			}
			digits = digits[:0]
		}
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("%w: trailing digits %q", ErrInvalidNotation, string(digits))
	}
	SortTiles(tiles)
	return tiles, nil
}

// ParseHand parses the concealed tiles of one hand. Beyond ParseTiles it
// rejects more than MaxHandTiles tiles with ErrTooManyTiles.
func ParseHand(notation string) ([]Tile, error) {
	tiles, err := ParseTiles(notation)
	if err != nil {
		return nil, err
	}
	if len(tiles) > MaxHandTiles {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTiles, len(tiles), MaxHandTiles)
	}
	return tiles, nil
}

// MustParseTiles panics on malformed notation.
func MustParseTiles(notation string) []Tile {
	tiles, err := ParseTiles(notation)
	if err != nil {
		panic(err)
	}
	return tiles
}

// TilesName renders tiles in compact notation, grouping runs of the same suit letter.
func TilesName(tiles []Tile) string {
	return ValuesName(Values(tiles))
}

func ValuesName(values []TileValue) string {
	var sb strings.Builder
	var pending byte
	for _, v := range values {
		name := v.Name()
		if len(name) != 2 {
			continue
		}
		if pending != 0 && pending != name[1] {
			sb.WriteByte(pending)
		}
		sb.WriteByte(name[0])
		pending = name[1]
	}
	if pending != 0 {
		sb.WriteByte(pending)
	}
	return sb.String()
}
