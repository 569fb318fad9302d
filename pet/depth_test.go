package pet

import "testing"

func TestLayerRank(t *testing.T) {
	cases := map[string]int{
		"cat_cat_64_a_2_10.png": 0,
		"cat_cat_64_b_2_5.png":  1,
		"cat_cat_64_z_0_0.png":  25,
		"cat_cat_64_sd.png":     -1,
		"odd.png":               -1,
	}
	for name, want := range cases {
		if got := layerRank(name); got != want {
			t.Errorf("layerRank(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestSortByDepth_RankOrderRegardlessOfInput(t *testing.T) {
	a := Sprite{FrameName: "t_t_64_a_0_0.png"}
	b := Sprite{FrameName: "t_t_64_b_0_0.png"}
	a.Depth = layerDepth(a)
	b.Depth = layerDepth(b)

	for _, in := range [][]Sprite{{a, b}, {b, a}} {
		sortByDepth(in)
		if in[0].FrameName != a.FrameName || in[1].FrameName != b.FrameName {
			t.Errorf("order = [%s %s], want [a b]", in[0].FrameName, in[1].FrameName)
		}
	}
}

func TestSortByDepth_ZOffsetMovesLayerForward(t *testing.T) {
	a := Sprite{FrameName: "t_t_64_a_0_0.png", Z: 1.5}
	b := Sprite{FrameName: "t_t_64_b_0_0.png"}
	a.Depth = layerDepth(a)
	b.Depth = layerDepth(b)

	s := []Sprite{a, b}
	sortByDepth(s)
	if s[0].FrameName != b.FrameName {
		t.Errorf("first = %s, want layer b", s[0].FrameName)
	}
}

func TestSortByDepth_Stable(t *testing.T) {
	s := []Sprite{
		{AssetName: "first", Depth: 1},
		{AssetName: "second", Depth: 1},
		{AssetName: "back", Depth: 0},
	}
	sortByDepth(s)
	got := []string{s[0].AssetName, s[1].AssetName, s[2].AssetName}
	want := []string{"back", "first", "second"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
