package dsgo_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/dsgo"
)

func BenchmarkVectorPush(b *testing.B) {
	for _, rate := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("rate-%d", rate), func(b *testing.B) {
			v, err := dsgo.New[int64](rate)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := v.Push(int64(i)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVectorPushPop(b *testing.B) {
	v, err := dsgo.New[int64](1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := v.Push(int64(i)); err != nil {
			b.Fatal(err)
		}
		if err := v.Pop(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVectorAt(b *testing.B) {
	v, err := dsgo.New[int64](1024)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		if err := v.Push(int64(i)); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sink int64
	for i := 0; i < b.N; i++ {
		sink += v.At(i & 1023)
	}
	_ = sink
}
