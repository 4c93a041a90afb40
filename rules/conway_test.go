package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{name: "live with none dies", neighbors: 0, alive: Alive, want: Dead},
		{name: "live with one dies", neighbors: 1, alive: Alive, want: Dead},
		{name: "live with two survives", neighbors: 2, alive: Alive, want: Alive},
		{name: "live with three survives", neighbors: 3, alive: Alive, want: Alive},
		{name: "live with four dies", neighbors: 4, alive: Alive, want: Dead},
		{name: "live with eight dies", neighbors: 8, alive: Alive, want: Dead},
		{name: "dead with two stays dead", neighbors: 2, alive: Dead, want: Dead},
		{name: "dead with three is born", neighbors: 3, alive: Dead, want: Alive},
		{name: "dead with four stays dead", neighbors: 4, alive: Dead, want: Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}

func TestApplyConwayRulesThreeAlwaysLive(t *testing.T) {
	for _, alive := range []bool{Dead, Alive} {
		if !ApplyConwayRules(3, alive) {
			t.Errorf("cell with 3 neighbors (alive=%v) should be live", alive)
		}
	}
}
