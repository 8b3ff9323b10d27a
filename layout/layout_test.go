package layout

import (
	"testing"

	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/fonts"
)

func loadSite(t *testing.T) *content.Site {
	t.Helper()
	fonts.LoadDefaults()
	site, err := content.Default()
	if err != nil {
		t.Fatalf("expected site content, got %v", err)
	}
	return site
}

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(1280, 720)
	if m.ColumnW != 1100 || m.ColumnX != 90 {
		t.Errorf("expected centered 1100px column at 90, got %v at %v", m.ColumnW, m.ColumnX)
	}
	m = NewMetrics(500, 720)
	if m.ColumnW != 452 || m.ColumnX != 24 {
		t.Errorf("expected padded column on narrow screens, got %v at %v", m.ColumnW, m.ColumnX)
	}
	if m.Columns(3, 3) != 1 {
		t.Errorf("expected one column on narrow screens, got %d", m.Columns(3, 3))
	}
	if NewMetrics(1280, 720).Columns(2, 3) != 2 {
		t.Error("expected columns capped by item count")
	}
}

func TestLayoutPageStacksSections(t *testing.T) {
	site := loadSite(t)
	for id, page := range site.Pages {
		lp := LayoutPage(site, page, 1280, 720)
		if len(lp.Sections) != len(page.Sections)+1 {
			t.Fatalf("%s: expected sections plus footer, got %d", id, len(lp.Sections))
		}
		y := 0.0
		for i, s := range lp.Sections {
			if lp.Tops[i] != y {
				t.Errorf("%s section %d: expected top %v, got %v", id, i, y, lp.Tops[i])
			}
			if s.Height <= 0 {
				t.Errorf("%s section %d: expected positive height", id, i)
			}
			y += s.Height
		}
		if lp.Height != y {
			t.Errorf("%s: expected page height %v, got %v", id, y, lp.Height)
		}
		if last := lp.Sections[len(lp.Sections)-1]; last.Kind != KindFooter {
			t.Errorf("%s: expected footer last, got %q", id, last.Kind)
		}
	}
}

func TestBlocksStayInsideSection(t *testing.T) {
	site := loadSite(t)
	for _, width := range []float64{1280, 700, 480} {
		for id, page := range site.Pages {
			lp := LayoutPage(site, page, width, 720)
			for i, s := range lp.Sections {
				for _, b := range s.Blocks {
					if b.X < 0 || b.X+b.W > width+0.5 {
						t.Errorf("%s@%v section %d: block %q escapes horizontally (%v..%v)", id, width, i, b.Text, b.X, b.X+b.W)
					}
					if b.Y+b.H > s.Height+0.5 {
						t.Errorf("%s@%v section %d: block %q escapes the bottom (%v > %v)", id, width, i, b.Text, b.Y+b.H, s.Height)
					}
				}
			}
		}
	}
}

func TestInteractivePanels(t *testing.T) {
	site := loadSite(t)

	find := func(id content.PageID, kind BlockKind) int {
		page, _ := site.Page(id)
		lp := LayoutPage(site, page, 1280, 720)
		n := 0
		for _, s := range lp.Sections {
			for _, b := range s.Blocks {
				if b.Kind == kind {
					n++
				}
			}
		}
		return n
	}
	if find(content.PageHowToAim, BlockDemo) != 1 {
		t.Error("expected one demo panel on the how-to-aim page")
	}
	if find(content.PageWhatIsTrap, BlockDiagram) != 1 {
		t.Error("expected one diagram panel on the what-is-trap page")
	}
	if find(content.PageHome, BlockIndicator) != 1 {
		t.Error("expected the scroll indicator on the home hero")
	}
}

func TestButtonsCarryLinks(t *testing.T) {
	site := loadSite(t)
	page, _ := site.Page(content.PageClasses)
	lp := LayoutPage(site, page, 1280, 720)

	booking := 0
	for _, s := range lp.Sections {
		for _, b := range s.Blocks {
			if b.Kind == BlockButton {
				if b.Link == nil {
					t.Errorf("expected button %q to carry a link", b.Text)
					continue
				}
				if b.Link.Href == BookingHref {
					booking++
				}
			}
		}
	}
	// three pricing cards plus the closing call button
	if booking != 4 {
		t.Errorf("expected 4 booking buttons, got %d", booking)
	}
}

func TestPricingItemsAreStaggered(t *testing.T) {
	site := loadSite(t)
	page, _ := site.Page(content.PageClasses)
	for _, sec := range page.Sections {
		if sec.Kind != content.KindPricing {
			continue
		}
		s := LayoutSection(sec, NewMetrics(1280, 720))
		if s.Items != len(sec.Classes) {
			t.Errorf("expected %d reveal items, got %d", len(sec.Classes), s.Items)
		}
		popular := 0
		for _, b := range s.Blocks {
			if b.Kind == BlockCard && b.Highlight {
				popular++
			}
		}
		if popular != 1 {
			t.Errorf("expected one highlighted card, got %d", popular)
		}
	}
}

func TestHeroTextFollowsParallax(t *testing.T) {
	site := loadSite(t)
	page, _ := site.Page(content.PageHome)
	s := LayoutSection(page.Sections[0], NewMetrics(1280, 720))
	if s.Height != 720 {
		t.Errorf("expected hero to fill the viewport, got %v", s.Height)
	}
	for _, b := range s.Blocks {
		if b.Kind == BlockIndicator {
			if b.Parallax {
				t.Error("expected the scroll indicator to stay put")
			}
			continue
		}
		if !b.Parallax {
			t.Errorf("expected hero block %q to follow the parallax", b.Text)
		}
	}
}

func TestUnknownKindIsEmpty(t *testing.T) {
	fonts.LoadDefaults()
	s := LayoutSection(content.Section{Kind: "mystery"}, NewMetrics(1280, 720))
	if s.Height != 0 || len(s.Blocks) != 0 {
		t.Errorf("expected empty section, got %+v", s)
	}
}
