package layout

import "testing"

func TestSnapshotEdge(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want float64
	}{
		{
			name: "defaults to width",
			snap: Snapshot{Width: 120},
			want: 120,
		},
		{
			name: "explicit right edge",
			snap: Snapshot{Width: 128, RightEdge: 120},
			want: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.Edge(); got != tt.want {
				t.Errorf("Edge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotConsistent(t *testing.T) {
	field := Element{Kind: KindField, Width: 40, Height: 20}
	input := Element{Kind: KindExternalValue, Width: 30, Height: 20}

	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{
			name: "matching sums",
			snap: Snapshot{Height: 40, Rows: []Row{
				{Height: 20, Width: 40, Elements: []Element{field}},
				{Height: 20, Width: 30, Elements: []Element{input}},
			}},
			want: true,
		},
		{
			name: "height mismatch",
			snap: Snapshot{Height: 50, Rows: []Row{
				{Height: 20, Width: 40, Elements: []Element{field}},
			}},
			want: false,
		},
		{
			name: "row width mismatch",
			snap: Snapshot{Height: 20, Rows: []Row{
				{Height: 20, Width: 90, Elements: []Element{field, input}},
			}},
			want: false,
		},
		{
			name: "empty spacer row",
			snap: Snapshot{Height: 8, Rows: []Row{{Height: 8, Width: 70, Spacer: true}}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.Consistent(); got != tt.want {
				t.Errorf("Consistent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRowQueries(t *testing.T) {
	row := Row{Height: 30, Elements: []Element{
		{Kind: KindField, Width: 10},
		{Kind: KindSpacer, Width: 5},
		{Kind: KindStatement, Width: 20},
	}}

	if !row.HasStatement() {
		t.Error("HasStatement() = false, want true")
	}
	if row.HasExternalInput() {
		t.Error("HasExternalInput() = true, want false")
	}
	if got := row.ElementsWidth(); got != 35 {
		t.Errorf("ElementsWidth() = %v, want 35", got)
	}
	if got := row.CenterY(100); got != 115 {
		t.Errorf("CenterY(100) = %v, want 115", got)
	}
}

func TestElementIsInput(t *testing.T) {
	tests := []struct {
		kind ElementKind
		want bool
	}{
		{KindSpacer, false},
		{KindField, false},
		{KindIcon, false},
		{KindExternalValue, true},
		{KindInlineValue, true},
		{KindStatement, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := (Element{Kind: tt.kind}).IsInput(); got != tt.want {
				t.Errorf("IsInput() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlockFieldText(t *testing.T) {
	b := Block{Fields: []string{"repeat", "until"}}
	if got := b.FieldText(1); got != "until" {
		t.Errorf("FieldText(1) = %q, want %q", got, "until")
	}
	if got := b.FieldText(2); got != "" {
		t.Errorf("FieldText(2) = %q, want empty", got)
	}
}
