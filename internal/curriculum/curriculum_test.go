package curriculum

import (
	"sort"
	"testing"
)

func TestFieldsSortedAndComplete(t *testing.T) {
	fields := Fields()
	if len(fields) == 0 {
		t.Fatal("no curriculum fields")
	}
	if !sort.StringsAreSorted(fields) {
		t.Errorf("fields not sorted: %v", fields)
	}
	for _, f := range fields {
		months := ForField(f)
		if len(months) == 0 {
			t.Errorf("field %q has no months", f)
		}
		for _, m := range months {
			if len(m.Quiz) == 0 {
				t.Errorf("field %q month %d has no quiz", f, m.Month)
			}
			for i, q := range m.Quiz {
				if q.Answer < 0 || q.Answer >= len(q.Options) {
					t.Errorf("field %q month %d question %d: answer index %d out of range", f, m.Month, i, q.Answer)
				}
			}
		}
	}
}

func TestForFieldFallsBackToDefault(t *testing.T) {
	unknown := ForField("Astronaut")
	def := ForField(defaultField)
	if len(unknown) != len(def) {
		t.Fatalf("fallback: got %d months, want %d", len(unknown), len(def))
	}
	if unknown[0].Topic != def[0].Topic {
		t.Errorf("fallback topic: got %q, want %q", unknown[0].Topic, def[0].Topic)
	}
}
