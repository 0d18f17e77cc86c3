package hand

import (
	"slices"
	"strings"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// WaitingValues collects the completing values of all arrangements, sorted and
// without repeats.
func WaitingValues(arrangements []HandArrangement) []mahjong.TileValue {
	var values []mahjong.TileValue
	for _, a := range arrangements {
		if a.wait != nil {
			values = append(values, a.wait.values...)
		}
	}
	slices.Sort(values)
	return slices.Compact(values)
}

// Key identifies an arrangement by shape and values, ignoring tile copy ids
// and the order in which groups were committed.
func (a HandArrangement) Key() string {
	groups := a.Groups()
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.typ.String() + ":" + mahjong.ValuesName(mahjong.Values(g.tiles[:g.count]))
	}
	slices.Sort(keys)
	if a.wait != nil {
		keys = append(keys, "wait:"+a.wait.kind.String()+":"+mahjong.TilesName(a.wait.tiles)+":"+mahjong.ValuesName(a.wait.values))
	}
	return strings.Join(keys, "|")
}

// Distinct keeps the first arrangement of every Key, preserving order.
// FindWaits itself never drops repeats.
func Distinct(arrangements []HandArrangement) []HandArrangement {
	seen := make(map[string]struct{}, len(arrangements))
	res := make([]HandArrangement, 0, len(arrangements))
	for _, a := range arrangements {
		k := a.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, a)
	}
	return res
}
