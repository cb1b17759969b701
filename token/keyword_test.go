package token

import (
	"strings"
	"testing"
)

func TestMatchTrigger(t *testing.T) {
	tests := []struct {
		tok  string
		want Trigger
	}{
		{"#scalar", Scalar},
		{"#vectorsname", VectorsName},
		{"#vectors", Vectors},
		{"#vector", Vector},
		{"#matrixname", MatrixName},
		{"#matrix", Matrix},
		{"#matrixes", Matrix},
		{"#vectorsnameX", VectorsName},
		{"#note", Comment},
		{"#", Comment},
		{"##matrix", Comment},
		{"1.5", NoTrigger},
		{"scalar", NoTrigger},
		{"", NoTrigger},
	}
	for _, tt := range tests {
		if got := MatchTrigger(tt.tok); got != tt.want {
			t.Errorf("MatchTrigger(%q) = %s, want %s", tt.tok, got, tt.want)
		}
	}
}

func TestTriggerOrder(t *testing.T) {
	ts := Triggers()
	for i := range ts {
		for j := i + 1; j < len(ts); j++ {
			if strings.HasPrefix(ts[j].Keyword(), ts[i].Keyword()) {
				t.Errorf("%s precedes %s", ts[i], ts[j])
			}
		}
	}
}

func TestTriggerNames(t *testing.T) {
	if MatrixName.Names() != Matrix || !MatrixName.IsNamed() {
		t.Errorf("#matrixname must name a #matrix")
	}
	if VectorsName.Names() != Vectors || !VectorsName.IsNamed() {
		t.Errorf("#vectorsname must name a #vectors")
	}
	if Vector.IsNamed() || Vector.Names() != NoTrigger {
		t.Errorf("#vector takes no name line")
	}
}
