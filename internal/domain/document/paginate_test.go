package document

import (
	"strings"
	"testing"
	"time"
)

func TestPaginateExplicitBreaks(t *testing.T) {
	pages := Paginate("primeira" + PageBreak + "segunda" + PageBreak + "terceira")
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[0][0] != "primeira" || pages[1][0] != "segunda" || pages[2][0] != "terceira" {
		t.Fatalf("unexpected pages: %v", pages)
	}
}

func TestPaginateImplicitBreak(t *testing.T) {
	usable := float64(UsableHeight)
	perPage := int(usable / LineHeight)
	var b strings.Builder
	total := perPage + 3
	for i := 0; i < total; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("linha")
	}

	pages := Paginate(b.String())
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0]) != perPage {
		t.Fatalf("expected %d lines on first page, got %d", perPage, len(pages[0]))
	}
	if len(pages[1]) != 3 {
		t.Fatalf("expected 3 overflow lines, got %d", len(pages[1]))
	}
}

func TestPaginatePreservesLines(t *testing.T) {
	in := sampleInput()
	text := ComposeContract(in)

	var wrapped []string
	for _, section := range strings.Split(text, PageBreak) {
		for _, raw := range strings.Split(section, "\n") {
			wrapped = append(wrapped, WrapLine(raw, MaxLineWidth)...)
		}
	}

	var emitted []string
	for _, page := range Paginate(text) {
		emitted = append(emitted, page...)
	}

	if len(emitted) != len(wrapped) {
		t.Fatalf("expected %d lines, got %d", len(wrapped), len(emitted))
	}
	for i := range wrapped {
		if emitted[i] != wrapped[i] {
			t.Fatalf("line %d reordered or altered: %q != %q", i, emitted[i], wrapped[i])
		}
	}
}

func TestWrapLine(t *testing.T) {
	t.Run("short line unchanged", func(t *testing.T) {
		got := WrapLine("curta", 10)
		if len(got) != 1 || got[0] != "curta" {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("empty line stays one line", func(t *testing.T) {
		got := WrapLine("", 10)
		if len(got) != 1 || got[0] != "" {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("wraps at word boundary", func(t *testing.T) {
		got := WrapLine("um dois tres quatro", 8)
		want := []string{"um dois", "tres", "quatro"}
		if len(got) != len(want) {
			t.Fatalf("got %v", got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	})

	t.Run("hard splits oversized words", func(t *testing.T) {
		got := WrapLine(strings.Repeat("a", 25), 10)
		if len(got) != 3 || got[0] != strings.Repeat("a", 10) || got[2] != strings.Repeat("a", 5) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("no content lost", func(t *testing.T) {
		line := "O serviço atenderá quarenta adultos e dez crianças, totalizando cinquenta convidados no endereço contratado."
		got := WrapLine(line, 30)
		if strings.Join(got, " ") != line {
			t.Fatalf("content altered: %v", got)
		}
		for _, l := range got {
			if len([]rune(l)) > 30 {
				t.Fatalf("line exceeds width: %q", l)
			}
		}
	})
}

func TestPaginateContractFitsWidth(t *testing.T) {
	in := sampleInput()
	in.GeneratedAt = time.Now()
	for _, page := range Paginate(ComposeContract(in)) {
		for _, line := range page {
			if n := len([]rune(line)); n > MaxLineWidth {
				t.Fatalf("line of %d runes exceeds budget: %q", n, line)
			}
		}
	}
}
