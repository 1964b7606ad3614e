package fragment

import "testing"

func BenchmarkNewScalars(b *testing.B) {
	tmpl := "a = ? AND b = ? AND c = ?"
	params := []Param{Int(1), String("x"), Float(2.5)}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if f := New(&tmpl, params); f == nil {
			b.Fatal("nil fragment")
		}
	}
}

func BenchmarkNewExpansion(b *testing.B) {
	tmpl := "a = ? AND b IN (?) AND c IN (?)"
	params := []Param{Int(1), Ints(1, 2, 3), Strings("x", "y")}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if f := New(&tmpl, params); f == nil {
			b.Fatal("nil fragment")
		}
	}
}

func BenchmarkNewExpansionPrecomputedOffsets(b *testing.B) {
	tmpl := "a = ? AND b IN (?) AND c IN (?)"
	params := []Param{Int(1), Ints(1, 2, 3), Strings("x", "y")}
	offsets := PlaceholderOffsets(tmpl)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if f := NewWithOffsets(&tmpl, params, offsets); f == nil {
			b.Fatal("nil fragment")
		}
	}
}
