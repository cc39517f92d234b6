package render

import (
	"strings"
	"testing"

	"github.com/tokenforge/tokenforge/internal/assets"
	"github.com/tokenforge/tokenforge/internal/tokens"
)

func buildSystem(t *testing.T, productType string) tokens.DesignSystem {
	t.Helper()
	_, preset := tokens.ResolvePreset(productType)
	return tokens.BuildDesignSystem(preset, assets.Empty())
}

func TestCSSIdempotent(t *testing.T) {
	sys := buildSystem(t, "finance")

	first := CSS(sys)
	second := CSS(sys)
	if first != second {
		t.Fatal("rendering the same design system twice must be byte-identical")
	}
}

func TestCSSContent(t *testing.T) {
	sys := buildSystem(t, "saas")
	css := CSS(sys)

	wantLines := []string{
		":root {",
		"  /* PRIMARY */",
		"  --color-primary-500: #6366f1;",
		"  --color-accent-950: #3b0764;",
		"  /* SPACING */",
		"  --spacing-4: 2rem;",
		"  --spacing-px: 1px;",
		"  /* BORDER RADIUS */",
		"  --radius-DEFAULT: 0.5rem;",
		"  /* SHADOWS */",
		"  /* BREAKPOINTS */",
		"  --breakpoint-2xl: 1536px;",
		"}",
	}
	for _, line := range wantLines {
		if !strings.Contains(css, line+"\n") {
			t.Errorf("css missing line %q", line)
		}
	}
}

func TestCSSSectionOrder(t *testing.T) {
	sys := buildSystem(t, "saas")
	css := CSS(sys)

	sections := []string{
		"/* PRIMARY */",
		"/* ACCENT */",
		"/* NEUTRAL */",
		"/* SUCCESS */",
		"/* WARNING */",
		"/* ERROR */",
		"/* SPACING */",
		"/* BORDER RADIUS */",
		"/* SHADOWS */",
		"/* BREAKPOINTS */",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(css, section)
		if idx < 0 {
			t.Fatalf("css missing section %q", section)
		}
		if idx < last {
			t.Fatalf("section %q out of order", section)
		}
		last = idx
	}
}

func TestCSSShadeOrder(t *testing.T) {
	sys := buildSystem(t, "saas")
	css := CSS(sys)

	// Shades must appear in table declaration order, light to dark.
	idx50 := strings.Index(css, "--color-primary-50:")
	idx500 := strings.Index(css, "--color-primary-500:")
	idx950 := strings.Index(css, "--color-primary-950:")
	if idx50 < 0 || idx500 < 0 || idx950 < 0 {
		t.Fatal("css missing primary shades")
	}
	if !(idx50 < idx500 && idx500 < idx950) {
		t.Fatal("primary shades out of declaration order")
	}
}
