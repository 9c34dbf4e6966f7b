package vec

import "testing"

// BenchmarkPushBack measures amortized append cost from empty.
func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		v := New[int]()
		for i := 0; i < 1024; i++ {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkPushBackReserved measures append cost with capacity preallocated.
func BenchmarkPushBackReserved(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		v := New[int]()
		if err := v.Reserve(1024); err != nil {
			b.Fatal(err)
		}
		for i := 0; i < 1024; i++ {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkSliceAppendBaseline is the built-in append doing the same work,
// for comparison.
func BenchmarkSliceAppendBaseline(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		var s []int
		for i := 0; i < 1024; i++ {
			s = append(s, i)
		}
		_ = s
	}
}

// BenchmarkInsertFront measures the shift-dominated worst case.
func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		v := New[int]()
		for i := 0; i < 256; i++ {
			if _, err := v.Insert(0, i); err != nil {
				b.Fatal(err)
			}
		}
	}
}
