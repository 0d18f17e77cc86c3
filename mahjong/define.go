package mahjong

import "errors"

var (
	ErrInvalidTileValue = errors.New("invalid tile value")
	ErrInvalidTileID    = errors.New("invalid tile id")
	ErrInvalidSuit      = errors.New("invalid suit")
	ErrInvalidNotation  = errors.New("invalid tile notation")
	ErrTooManyCopies    = errors.New("too many copies of tile")
	ErrTooManyTiles     = errors.New("too many tiles in hand")
)

const (
	CopiesPerValue = 4  // 每种牌四张
	MaxHandTiles   = 14 // 手牌上限
	MinNumber      = 1
	MaxNumber      = 9
)

type EColor int

const (
	ColorMan    EColor = iota // 万
	ColorPin                  // 筒
	ColorSou                  // 索
	ColorWind                 // 风牌
	ColorDragon               // 三元牌
	ColorEnd
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}

func (c EColor) IsSuit() bool {
	return c >= ColorMan && c <= ColorSou
}

func (c EColor) IsHonor() bool {
	return c == ColorWind || c == ColorDragon
}

type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
)

func (s Suit) IsValid() bool {
	return s >= SuitMan && s <= SuitSou
}

func (s Suit) Color() EColor {
	return EColor(s)
}

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "Man"
	case SuitPin:
		return "Pin"
	case SuitSou:
		return "Sou"
	default:
		return "Suit(?)"
	}
}

func (s Suit) letter() byte {
	return "mps"[s]
}

type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

var windNames = [...]string{"East", "South", "West", "North"}

// NextDora is the dora indicated by this wind: East, South, West, North, East.
func (w Wind) NextDora() Wind {
	return (w + 1) % 4
}

// Next returns the following seat wind. North is last.
func (w Wind) Next() (Wind, bool) {
	if w == WindNorth {
		return w, false
	}
	return w + 1, true
}

func (w Wind) String() string {
	if w < WindEast || w > WindNorth {
		return "Wind(?)"
	}
	return windNames[w]
}

type Dragon int

const (
	DragonWhite Dragon = iota // 白
	DragonRed                 // 中
	DragonGreen               // 发
)

var dragonNames = [...]string{"White", "Red", "Green"}

// NextDora is the dora indicated by this dragon: White, Red, Green, White.
func (d Dragon) NextDora() Dragon {
	return (d + 1) % 3
}

func (d Dragon) String() string {
	if d < DragonWhite || d > DragonGreen {
		return "Dragon(?)"
	}
	return dragonNames[d]
}

// Honor is a wind or a dragon. Winds sort before dragons.
type Honor int

const (
	HonorEast Honor = iota
	HonorSouth
	HonorWest
	HonorNorth
	HonorWhite
	HonorRed
	HonorGreen
	honorEnd
)

func WindHonor(w Wind) Honor {
	return Honor(w)
}

func DragonHonor(d Dragon) Honor {
	return HonorWhite + Honor(d)
}

func (h Honor) IsValid() bool {
	return h >= HonorEast && h < honorEnd
}

func (h Honor) Wind() (Wind, bool) {
	if h >= HonorEast && h <= HonorNorth {
		return Wind(h), true
	}
	return 0, false
}

func (h Honor) Dragon() (Dragon, bool) {
	if h >= HonorWhite && h <= HonorGreen {
		return Dragon(h - HonorWhite), true
	}
	return 0, false
}

func (h Honor) NextDora() Honor {
	if w, ok := h.Wind(); ok {
		return WindHonor(w.NextDora())
	}
	d, _ := h.Dragon()
	return DragonHonor(d.NextDora())
}

func (h Honor) String() string {
	if w, ok := h.Wind(); ok {
		return w.String()
	}
	if d, ok := h.Dragon(); ok {
		return d.String()
	}
	return "Honor(?)"
}
