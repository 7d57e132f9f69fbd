package preprocess

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzPrepare(f *testing.F) {
	seeds := []string{
		"",
		"RT @user Mantap bgt!!! https://t.co/a #PON2024",
		"<p>&amp;</p>",
		"a.b.c",
		"😀😀😀",
		"Café Ñandú",
		"btw yaampun makasih",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	p := NewPipeline(nil)
	f.Fuzz(func(t *testing.T, in string) {
		if !utf8.ValidString(in) {
			t.Skip()
		}
		out := p.Prepare(in)

		if out != strings.TrimSpace(out) {
			t.Fatalf("untrimmed output %q", out)
		}
		if strings.Contains(out, "  ") {
			t.Fatalf("double space in %q", out)
		}
		for _, r := range out {
			if !(r >= 'a' && r <= 'z') && r != ' ' && r != '-' {
				t.Fatalf("unexpected rune %q in %q", r, out)
			}
		}
		for _, tok := range strings.Fields(out) {
			if len(tok) < 2 {
				t.Fatalf("short token %q in %q", tok, out)
			}
			if IsStopword(tok) {
				t.Fatalf("stopword %q in %q", tok, out)
			}
		}
	})
}
