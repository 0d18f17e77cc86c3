package mahjong

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Hand is one fixture hand: concealed tiles plus, optionally, the values it should wait on.
type Hand struct {
	Name     string
	Tiles    []Tile
	Waits    []TileValue
	HasWaits bool
}

type manualHand struct {
	Name  string  `mapstructure:"name"`
	Tiles string  `mapstructure:"tiles"`
	Waits *string `mapstructure:"waits"`
}

// Manual 手牌配置文件
type Manual struct {
	vp    *viper.Viper
	hands []Hand
}

// LoadManual reads a hand fixture file. The format is picked from the extension
// and defaults to yaml.
func LoadManual(path string) (*Manual, error) {
	m := &Manual{vp: viper.New()}
	m.vp.SetDefault("enable", true)
	if filepath.Ext(path) == "" {
		m.vp.SetConfigType("yaml")
	}
	m.vp.SetConfigFile(path)
	if err := m.vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read manual %s: %w", path, err)
	}

	var raw []manualHand
	if err := m.vp.UnmarshalKey("hands", &raw); err != nil {
		return nil, fmt.Errorf("decode manual %s: %w", path, err)
	}
	for i, h := range raw {
		hand, err := h.parse()
		if err != nil {
			return nil, fmt.Errorf("hand %d (%s): %w", i, h.Name, err)
		}
		m.hands = append(m.hands, hand)
	}
	return m, nil
}

func (h manualHand) parse() (Hand, error) {
	tiles, err := ParseHand(h.Tiles)
	if err != nil {
		return Hand{}, err
	}
	hand := Hand{Name: h.Name, Tiles: tiles}
	if hand.Name == "" {
		hand.Name = strings.TrimSpace(h.Tiles)
	}
	if h.Waits != nil {
		waits, err := ParseTiles(*h.Waits)
		if err != nil {
			return Hand{}, fmt.Errorf("waits: %w", err)
		}
		hand.Waits = Values(waits)
		hand.HasWaits = true
	}
	return hand, nil
}

func (m *Manual) Enabled() bool {
	if m == nil {
		return false
	}
	return m.vp.GetBool("enable")
}

func (m *Manual) Hands() []Hand {
	if !m.Enabled() {
		return nil
	}
	return m.hands
}
