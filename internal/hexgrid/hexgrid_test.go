package hexgrid

import "testing"

func TestStepWrapE(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	got := g.Step(Pos{X: 9, Y: 4}, E)
	want := Pos{X: 0, Y: 4}
	if got != want {
		t.Fatalf("Step E wrap: got %+v, want %+v", got, want)
	}
}

func TestStepWrapSEEvenRow(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	got := g.Step(Pos{X: 9, Y: 4}, SE)
	want := Pos{X: 0, Y: 5}
	if got != want {
		t.Fatalf("Step SE wrap on even row: got %+v, want %+v", got, want)
	}
}

func TestStepSWOddRowShiftsWest(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	got := g.Step(Pos{X: 5, Y: 3}, SW)
	want := Pos{X: 4, Y: 4}
	if got != want {
		t.Fatalf("Step SW on odd row: got %+v, want %+v", got, want)
	}
}

func TestNormalizeWraps(t *testing.T) {
	cases := map[int]int{
		0:  E,
		6:  E,
		-6: E,
		4:  NW,
		-3: W,
		3:  W,
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%d) = %d, want %d", in, got, want)
		}
	}
}
