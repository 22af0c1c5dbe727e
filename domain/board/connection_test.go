package board

import "testing"

func TestIsNormalStraightPossible(t *testing.T) {
	yes := []string{"Ts9c8h", "7s9sTh", "Ts9s6s", "AcKsTh", "KhTs9c"}
	no := []string{"As2c3h", "7s9c7h", "Ts9c5h", "Ks2c3h", "AcKs3h", "KhTsTc", "8s8d8c"}
	for _, s := range yes {
		if !MustParse(s).IsNormalStraightPossible() {
			t.Errorf("%s: expected normal straight", s)
		}
	}
	for _, s := range no {
		if MustParse(s).IsNormalStraightPossible() {
			t.Errorf("%s: expected no normal straight", s)
		}
	}
}

func TestIsWheelPossible(t *testing.T) {
	yes := []string{"As2c3h", "5h3cAc", "2dAd4d", "Ah5c2c"}
	no := []string{"Ts9c8h", "Ts9s6s", "AcKsTh", "7s9c7h", "Ks2c3h", "AcKs3h", "AhTsTc"}
	for _, s := range yes {
		if !MustParse(s).IsWheelPossible() {
			t.Errorf("%s: expected wheel", s)
		}
	}
	for _, s := range no {
		if MustParse(s).IsWheelPossible() {
			t.Errorf("%s: expected no wheel", s)
		}
	}
}

func TestIsAnyStraightPossible(t *testing.T) {
	yes := []string{"Ts9c8h", "7s9sTh", "Ts9s6s", "AcKsTh", "As2c3h", "5h3cAc", "2dAd4d"}
	no := []string{"7s9c7h", "Ts9c5h", "Ks2c3h", "AcKs3h", "KhTsTc"}
	for _, s := range yes {
		if !MustParse(s).IsAnyStraightPossible() {
			t.Errorf("%s: expected a straight", s)
		}
	}
	for _, s := range no {
		if MustParse(s).IsAnyStraightPossible() {
			t.Errorf("%s: expected no straight", s)
		}
	}
}

func TestIsOnlyOESDPossible(t *testing.T) {
	yes := []string{
		"Ts9c5h", "Jh9h2h", "Qh9h2h", "Jd6c3c", "Ks2c3h",
		"As5c6h", "As7c4h", "AsTc7h", "KsThTc", "AcJh8d", "KhTh2c",
	}
	no := []string{
		"AsTc6h", "As2c3h", "As8c8h", "AsJc7h", "AsKc8h", "Ks8h3c", "Ks8h8c",
	}
	for _, s := range yes {
		if !MustParse(s).IsOnlyOESDPossible() {
			t.Errorf("%s: expected oesd", s)
		}
	}
	for _, s := range no {
		if MustParse(s).IsOnlyOESDPossible() {
			t.Errorf("%s: expected no oesd", s)
		}
	}
}

func TestIsOnlyGutshotPossible(t *testing.T) {
	yes := []string{"Ks8c4h", "Ks9c4h", "Ac2h6h", "Ac9h5h", "AcKh6h", "Kh9h2h", "7s7d7c"}
	no := []string{"Ac9h4h", "AcKhTh", "Ks8c5h", "KsJc4h", "Ac2h4h", "Ac5h6s", "7c5c5s"}
	for _, s := range yes {
		if !MustParse(s).IsOnlyGutshotPossible() {
			t.Errorf("%s: expected gutshot", s)
		}
	}
	for _, s := range no {
		if MustParse(s).IsOnlyGutshotPossible() {
			t.Errorf("%s: expected no gutshot", s)
		}
	}
}

func TestIsDisconnected(t *testing.T) {
	yes := []string{"Kh8h2h", "Kh7c2c", "Qh7c2c"}
	no := []string{"Kh6c2d", "Ah6c9d", "Kh3c9d", "Ac8d2h", "Ac9h4h"}
	for _, s := range yes {
		if !MustParse(s).IsDisconnected() {
			t.Errorf("%s: expected disconnected", s)
		}
	}
	for _, s := range no {
		if MustParse(s).IsDisconnected() {
			t.Errorf("%s: expected connected", s)
		}
	}
}

func TestHasConnection(t *testing.T) {
	all := []Connection{ConnDisconnected, ConnGutshot, ConnOESD, ConnWheel, ConnNormalStraight, ConnAnyStraight}
	tests := []struct {
		board string
		holds []Connection
	}{
		{"Kh8h2h", []Connection{ConnDisconnected}},
		{"Kh9h2h", []Connection{ConnGutshot}},
		{"KhTh2c", []Connection{ConnOESD}},
		{"Ah5c2c", []Connection{ConnWheel, ConnAnyStraight}},
		{"KhTs9c", []Connection{ConnNormalStraight, ConnAnyStraight}},
		{"As4s5s", []Connection{ConnWheel, ConnAnyStraight}},
		{"Ac9h4h", nil},
	}
	for _, tt := range tests {
		b := MustParse(tt.board)
		want := NewSet(tt.holds...)
		for _, c := range all {
			if got := b.HasConnection(c); got != want.Has(c) {
				t.Errorf("%s: %s expected %v, got %v", tt.board, c, want.Has(c), got)
			}
		}
	}
}

func TestConnectedness(t *testing.T) {
	tests := []struct {
		board string
		want  Connectedness
	}{
		{"Ts9c8h", StraightPossible},
		{"As2c3h", StraightPossible},
		{"Ks2c3h", OESDPossible},
		{"Ks9c4h", GutshotPossible},
		{"8s8d8c", GutshotPossible},
		{"Kh8h2h", Disconnected},
		{"Ac9h4h", AceHighDry},
		{"Ac8d2h", AceHighDry},
	}
	for _, tt := range tests {
		if got := MustParse(tt.board).Connectedness(); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.board, tt.want, got)
		}
	}
}

func TestConnectednessExclusive(t *testing.T) {
	for _, b := range allBoards(t) {
		n := 0
		for _, holds := range []bool{
			b.IsAnyStraightPossible(),
			b.IsOnlyOESDPossible(),
			b.IsOnlyGutshotPossible(),
			b.IsDisconnected(),
		} {
			if holds {
				n++
			}
		}
		if n > 1 {
			t.Fatalf("%s: %d connectedness classes hold", b, n)
		}
		if n == 0 {
			if !b.Highest().IsAce() {
				t.Fatalf("%s: unclassified board without an ace", b)
			}
			if b.Connectedness() != AceHighDry {
				t.Fatalf("%s: expected AceHighDry, got %s", b, b.Connectedness())
			}
		}
		if b.IsNormalStraightPossible() && b.Pairing() != Unpaired {
			t.Fatalf("%s: paired board with a normal straight", b)
		}
	}
}

func TestParseConnection(t *testing.T) {
	for code, want := range map[string]Connection{
		"DC": ConnDisconnected, "GS": ConnGutshot, "OESD": ConnOESD,
		"WH": ConnWheel, "NS": ConnNormalStraight, "AS": ConnAnyStraight,
	} {
		got, err := ParseConnection(code)
		if err != nil {
			t.Fatal(err)
		}
		if got != want || got.String() != code {
			t.Fatalf("%s: got %s", code, got)
		}
	}
	if _, err := ParseConnection("oesd"); err == nil {
		t.Fatal("expected error for lower case code")
	}
}
