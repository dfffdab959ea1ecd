package parser

import (
	"strings"
	"testing"
)

const (
	longScript = `[Name "Italian"]
1. e2e4 e7e5 2. g1f3 b8c6 3. f1c4 f8c5 4. c2c3 g8f6 5. d2d4 e5d4 6. c3d4 c5b4
7. b1c3 f6e4 8. e1g1 e4c3 9. b2c3 b4c3 10. d1b3 c3a1 11. c4f7 e8f8 12. c1g5 c6e7
13. f3e5 a1d4 14. f7g6 d7d5 15. b3f3 c8f5 16. g6f5 d4e5 17. f5e6 e5f6 18. g5f6 g7f6
19. f3f6 f8e8 20. f6f7 1-0
`
	shortScript = `[Name "Short"]
1. e2e4 e7e5 2. g1f3 b8c6 *
`
)

func BenchmarkParseScript(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := NewParser(strings.NewReader(longScript), "")
		if _, err := p.Next(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseManyScripts(b *testing.B) {
	input := strings.Repeat(shortScript+"\n", 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := NewParser(strings.NewReader(input), "")
		if _, err := p.ParseAll(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMove(b *testing.B) {
	moves := []string{"e2e4", "e7e8=Q", "d5xe6", "g1-f3+", "a2a1n"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if _, err := ParseMove(m); err != nil {
				b.Fatal(err)
			}
		}
	}
}
