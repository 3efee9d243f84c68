package rollup

import (
	"errors"
	"testing"
)

func TestTimeGrainRender(t *testing.T) {
	g := TimeGrain{Column: "ts", Grain: GrainDay, Label: "day"}

	got, err := g.Render()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	want := `date_trunc('day', ts) AS "day"`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSliceRender(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		want  string
	}{
		{"default label", NewSlice("country"), `country AS "country"`},
		{"relabeled", NewSlice("country").As("Country"), `country AS "Country"`},
		{"explicit label", Slice{Column: "region", Label: "sales_region"}, `region AS "sales_region"`},
		{"zero-value label falls back to column", Slice{Column: "city"}, `city AS "city"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.slice.Render()
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMeasureRender(t *testing.T) {
	m := Measure{Expression: "count(*)", Label: "total"}

	got, err := m.Render()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	want := `count(*) AS "total"`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRatioRender(t *testing.T) {
	r := Ratio{Numerator: "a", Denominator: "b", Label: "r"}

	got, err := r.Render()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	want := `(a) / NULLIF(b, 0) AS "r"`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestListFilterRender(t *testing.T) {
	f := ListFilter("x", "1", "2")

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	// List filters keep their trailing newline; it shapes the WHERE clause.
	want := "x IN ('1', '2')\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestListFilterRenderNoValues(t *testing.T) {
	got, err := ListFilter("x").Render()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "x IN ()\n" {
		t.Errorf("Expected empty IN list, got %q", got)
	}
}

func TestListFilterRenderNilValues(t *testing.T) {
	f := Filter{Column: "x", Kind: FilterList}

	_, err := f.Render()
	if !errors.Is(err, ErrInvalidFilterValue) {
		t.Errorf("Expected ErrInvalidFilterValue, got: %v", err)
	}
}

func TestCustomFilterRender(t *testing.T) {
	f := CustomFilter("created_at >= now() - interval '7 days'")

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "created_at >= now() - interval '7 days'" {
		t.Errorf("Expected expression verbatim, got %q", got)
	}
}

func TestCustomFilterRenderMissingExpression(t *testing.T) {
	f := Filter{Column: "x", Kind: FilterCustom}

	_, err := f.Render()
	if !errors.Is(err, ErrMissingExpression) {
		t.Errorf("Expected ErrMissingExpression, got: %v", err)
	}
}

func TestFilterRenderUnsupportedKind(t *testing.T) {
	for _, kind := range []FilterKind{"", "range", "LIST"} {
		f := Filter{Column: "x", Kind: kind, Values: []string{"1"}}

		_, err := f.Render()
		if !errors.Is(err, ErrUnsupportedFilterKind) {
			t.Errorf("Kind %q: expected ErrUnsupportedFilterKind, got: %v", kind, err)
		}
	}
}

func TestFragmentInterface(t *testing.T) {
	// Every variant satisfies Fragment.
	fragments := []Fragment{
		TimeGrain{Column: "ts", Grain: GrainMonth, Label: "month"},
		NewSlice("country"),
		Measure{Expression: "sum(amount)", Label: "revenue"},
		Ratio{Numerator: "sum(clicks)", Denominator: "sum(views)", Label: "ctr"},
		ListFilter("status", "ok"),
	}

	for _, f := range fragments {
		if _, err := f.Render(); err != nil {
			t.Errorf("%T: expected no error, got: %v", f, err)
		}
	}
}
