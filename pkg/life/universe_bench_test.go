package life

import (
	"fmt"
	"testing"
)

func BenchmarkTick(b *testing.B) {
	for _, size := range []int{64, 128, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			u, err := New(size, size, SeedRandom(42))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Tick()
			}
		})
	}
}

func BenchmarkPopulation(b *testing.B) {
	u, err := New(256, 256, SeedRandom(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.Population()
	}
}
