package mahjong

import (
	"cmp"
	"fmt"
	"strconv"
)

// SuitedTile is a number tile of one of the three suits.
type SuitedTile struct {
	suit   Suit
	number int
}

// NewSuitedTile fails with ErrInvalidTileValue when number is outside 1..9.
func NewSuitedTile(suit Suit, number int) (SuitedTile, error) {
	if !suit.IsValid() {
		return SuitedTile{}, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	if number < MinNumber || number > MaxNumber {
		return SuitedTile{}, fmt.Errorf("%w: %d %s", ErrInvalidTileValue, number, suit)
	}
	return SuitedTile{suit: suit, number: number}, nil
}

func (s SuitedTile) Suit() Suit {
	return s.suit
}

func (s SuitedTile) Number() int {
	return s.number
}

func (s SuitedTile) IsValid() bool {
	return s.suit.IsValid() && s.number >= MinNumber && s.number <= MaxNumber
}

func (s SuitedTile) IsTerminal() bool {
	return s.number == MinNumber || s.number == MaxNumber
}

func (s SuitedTile) IsSimple() bool {
	return s.number > MinNumber && s.number < MaxNumber
}

// NextDora wraps 9 around to 1 within the suit.
func (s SuitedTile) NextDora() SuitedTile {
	return SuitedTile{suit: s.suit, number: s.number%MaxNumber + 1}
}

func (s SuitedTile) Next() (SuitedTile, bool) {
	if s.number >= MaxNumber {
		return s, false
	}
	return SuitedTile{suit: s.suit, number: s.number + 1}, true
}

func (s SuitedTile) Prev() (SuitedTile, bool) {
	if s.number <= MinNumber {
		return s, false
	}
	return SuitedTile{suit: s.suit, number: s.number - 1}, true
}

// FollowedBy reports whether other is the tile directly after s in the same suit.
func (s SuitedTile) FollowedBy(other SuitedTile) bool {
	return s.suit == other.suit && other.number == s.number+1
}

func (s SuitedTile) String() string {
	if !s.IsValid() {
		return "Invalid tile"
	}
	return strconv.Itoa(s.number) + " " + s.suit.String()
}

// TileValue identifies a kind of tile regardless of which physical copy it is.
// Values are packed as color<<4 | point, so integer order is tile order:
// Man < Pin < Sou < winds < dragons, numbers ascending inside a suit.
type TileValue int32

const ValueNull TileValue = 0

func makeValue(color EColor, point int) TileValue {
	return TileValue(int(color)<<4 | point)
}

func NewSuited(suit Suit, number int) (TileValue, error) {
	s, err := NewSuitedTile(suit, number)
	if err != nil {
		return ValueNull, err
	}
	return FromSuited(s), nil
}

// MustSuited is NewSuited for values known to be valid. It panics otherwise.
func MustSuited(suit Suit, number int) TileValue {
	v, err := NewSuited(suit, number)
	if err != nil {
		panic(err)
	}
	return v
}

func FromSuited(s SuitedTile) TileValue {
	if !s.IsValid() {
		return ValueNull
	}
	return makeValue(s.suit.Color(), s.number)
}

func FromHonor(h Honor) TileValue {
	if w, ok := h.Wind(); ok {
		return makeValue(ColorWind, int(w)+1)
	}
	if d, ok := h.Dragon(); ok {
		return makeValue(ColorDragon, int(d)+1)
	}
	return ValueNull
}

func WindValue(w Wind) TileValue {
	return FromHonor(WindHonor(w))
}

func DragonValue(d Dragon) TileValue {
	return FromHonor(DragonHonor(d))
}

func (v TileValue) Color() EColor {
	return EColor(v >> 4)
}

func (v TileValue) Point() int {
	return int(v & 0x0F)
}

func (v TileValue) IsValid() bool {
	c, p := v.Color(), v.Point()
	return c >= ColorMan && c < ColorEnd && p >= 1 && p <= PointCountByColor[c]
}

func (v TileValue) IsSuited() bool {
	return v.IsValid() && v.Color().IsSuit()
}

func (v TileValue) IsHonor() bool {
	return v.IsValid() && v.Color().IsHonor()
}

func (v TileValue) Suited() (SuitedTile, bool) {
	if !v.IsSuited() {
		return SuitedTile{}, false
	}
	return SuitedTile{suit: Suit(v.Color()), number: v.Point()}, true
}

func (v TileValue) Honor() (Honor, bool) {
	if !v.IsHonor() {
		return 0, false
	}
	if v.Color() == ColorWind {
		return WindHonor(Wind(v.Point() - 1)), true
	}
	return DragonHonor(Dragon(v.Point() - 1)), true
}

func (v TileValue) Number() (int, bool) {
	if !v.IsSuited() {
		return 0, false
	}
	return v.Point(), true
}

func (v TileValue) IsTerminal() bool {
	s, ok := v.Suited()
	return ok && s.IsTerminal()
}

func (v TileValue) IsSimple() bool {
	s, ok := v.Suited()
	return ok && s.IsSimple()
}

// IsYaochu is true for terminals and honors.
func (v TileValue) IsYaochu() bool {
	return v.IsTerminal() || v.IsHonor()
}

// NextDora returns the dora indicated by v. Invalid values are returned unchanged.
func (v TileValue) NextDora() TileValue {
	if s, ok := v.Suited(); ok {
		return FromSuited(s.NextDora())
	}
	if h, ok := v.Honor(); ok {
		return FromHonor(h.NextDora())
	}
	return v
}

func (v TileValue) Next() (TileValue, bool) {
	s, ok := v.Suited()
	if !ok {
		return ValueNull, false
	}
	n, ok := s.Next()
	if !ok {
		return ValueNull, false
	}
	return FromSuited(n), true
}

func (v TileValue) Prev() (TileValue, bool) {
	s, ok := v.Suited()
	if !ok {
		return ValueNull, false
	}
	p, ok := s.Prev()
	if !ok {
		return ValueNull, false
	}
	return FromSuited(p), true
}

// FollowedBy is false whenever either side is an honor.
func (v TileValue) FollowedBy(other TileValue) bool {
	a, ok := v.Suited()
	if !ok {
		return false
	}
	b, ok := other.Suited()
	if !ok {
		return false
	}
	return a.FollowedBy(b)
}

func (v TileValue) Compare(other TileValue) int {
	return cmp.Compare(v, other)
}

// Name is the short notation of the value, e.g. "3m" or "5z".
func (v TileValue) Name() string {
	if s, ok := v.Suited(); ok {
		return strconv.Itoa(s.number) + string(s.suit.letter())
	}
	if h, ok := v.Honor(); ok {
		return strconv.Itoa(honorDigit[h]) + "z"
	}
	return "?"
}

func (v TileValue) String() string {
	if s, ok := v.Suited(); ok {
		return s.String()
	}
	if h, ok := v.Honor(); ok {
		return h.String()
	}
	return "Invalid tile"
}
