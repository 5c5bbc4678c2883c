package navgraph

import (
	"strings"
	"testing"

	"github.com/matzehuels/blockoutline/pkg/overlay"
)

func order(v overlay.NavOrder) *overlay.NavOrder { return &v }

func testResult() *overlay.Result {
	return &overlay.Result{
		Elements: []overlay.Element{
			{ID: "end", Label: "End of value connection. ", Order: order(1000.5), Width: 10, Height: 20},
			{ID: "spacer"},
			{ID: "start", Label: "Start of value connection. ", Order: order(999.5)},
			{ID: "foo", Label: "foo. ", Order: order(1)},
		},
		Annotations: []overlay.Annotation{
			{Node: overlay.NodeRef{Kind: overlay.NodeChildBlock, ID: "c1"}, Order: order(1000), Label: "42"},
			{Node: overlay.NodeRef{Kind: overlay.NodeChildBlock, ID: "c2"}, Label: "unordered"},
		},
	}
}

func TestStops(t *testing.T) {
	stops := Stops(testResult())
	want := []string{"foo", "start", "child-block:c1", "end"}
	if len(stops) != len(want) {
		t.Fatalf("Stops() returned %d stops, want %d", len(stops), len(want))
	}
	for i, s := range stops {
		if s.ID != want[i] {
			t.Errorf("Stops()[%d] = %s, want %s", i, s.ID, want[i])
		}
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testResult(), Options{})

	if !strings.Contains(dot, "digraph Navigation") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `label="1: foo."`) {
		t.Error("ToDOT() output missing foo label")
	}
	if !strings.Contains(dot, `"foo" -> "start"`) {
		t.Error("ToDOT() output missing first edge")
	}
	if !strings.Contains(dot, `"child-block:c1" -> "end"`) {
		t.Error("ToDOT() output missing annotation edge")
	}
	if strings.Contains(dot, "spacer") || strings.Contains(dot, "unordered") {
		t.Error("ToDOT() output contains unordered stops")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testResult(), Options{Detailed: true})
	if !strings.Contains(dot, "w=10 h=20") {
		t.Error("ToDOT() detailed output missing geometry")
	}
}

func TestToDOT_Annotation(t *testing.T) {
	dot := ToDOT(testResult(), Options{})
	if !strings.Contains(dot, "shape=ellipse") {
		t.Error("ToDOT() output missing annotation styling")
	}
}

func TestToDOT_Empty(t *testing.T) {
	dot := ToDOT(&overlay.Result{}, Options{})
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() on empty result produced edges")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
}
