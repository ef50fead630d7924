package biquad

import "testing"

func BenchmarkProcessBlock(b *testing.B) {
	s := NewSection(Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.3})
	buf := make([]float64, 512)
	for i := range buf {
		buf[i] = float64(i%7) * 0.1
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ProcessBlock(buf)
	}
}

func BenchmarkProcessBlockTo(b *testing.B) {
	s := NewSection(Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.3})
	src := make([]float64, 512)
	dst := make([]float64, 512)
	for i := range src {
		src[i] = float64(i%7) * 0.1
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ProcessBlockTo(dst, src)
	}
}
