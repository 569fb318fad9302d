package pet

import (
	"cmp"
	"slices"
	"strings"
)

// ShadowDepth keeps the shadow behind every body layer.
const ShadowDepth = -1

// layerRank recovers the alphabetic rank of the layer letter in a frame name
// such as "cat_cat_64_b_2_0.png" (b → 1). Anything else ranks -1.
func layerRank(frameName string) int {
	fragments := strings.Split(frameName, "_")
	if len(fragments) < 3 {
		return -1
	}
	letter := fragments[len(fragments)-3]
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return -1
	}
	return int(letter[0] - 'a')
}

func layerDepth(s Sprite) float64 {
	return float64(layerRank(s.FrameName)) + s.Z
}

// sortByDepth orders sprites back to front. Equal depths keep their order.
func sortByDepth(sprites []Sprite) {
	slices.SortStableFunc(sprites, func(a, b Sprite) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
}
