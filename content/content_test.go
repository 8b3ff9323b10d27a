package content

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultSite(t *testing.T) {
	site, err := Default()
	if err != nil {
		t.Fatalf("expected embedded content to load, got %v", err)
	}

	for _, id := range []PageID{PageHome, PageWhatIsTrap, PageHowToAim, PageClasses} {
		page, ok := site.Page(id)
		if !ok {
			t.Errorf("expected page %q", id)
			continue
		}
		if len(page.Sections) == 0 {
			t.Errorf("expected page %q to have sections", id)
		}
	}
	if len(site.Nav) != 4 {
		t.Errorf("expected 4 nav items, got %d", len(site.Nav))
	}
	if site.CTA.Page != PageClasses {
		t.Errorf("expected call to action to point at classes, got %q", site.CTA.Page)
	}
}

func TestDefaultSiteInteractiveSections(t *testing.T) {
	site, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	has := func(id PageID, kind Kind) bool {
		page, _ := site.Page(id)
		for _, s := range page.Sections {
			if s.Kind == kind {
				return true
			}
		}
		return false
	}
	if !has(PageHowToAim, KindDemo) {
		t.Error("expected the aim demo on the how-to-aim page")
	}
	if !has(PageWhatIsTrap, KindDiagram) {
		t.Error("expected the flight diagram on the what-is-trap page")
	}
	if !has(PageHome, KindHero) {
		t.Error("expected a hero on the home page")
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	doc := `
pages:
  home:
    title: Home
    sections:
      - kind: carousel
`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), `unknown kind "carousel"`) {
		t.Errorf("expected unknown kind error, got %v", err)
	}
}

func TestParseRejectsBrokenLinks(t *testing.T) {
	doc := `
nav:
  - name: Shop
    page: shop
pages:
  home:
    title: Home
    sections:
      - kind: cta
        buttons:
          - label: Nowhere
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `unknown page "shop"`) {
		t.Errorf("expected unknown page error, got %v", msg)
	}
	if !strings.Contains(msg, `"Nowhere" has no target`) {
		t.Errorf("expected missing target error, got %v", msg)
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("brand: Trap\n")); err == nil {
		t.Error("expected error for content without pages")
	}
	if _, err := Parse([]byte("pages: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml": {Data: []byte("pages:\n  home:\n    title: Home\n    sections:\n      - kind: intro\n")},
	}
	site, err := Load(fsys, "site.yaml")
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if p, _ := site.Page(PageHome); p.Title != "Home" {
		t.Errorf("expected title Home, got %q", p.Title)
	}
	if _, err := Load(fsys, "missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPackagePerSession(t *testing.T) {
	tests := []struct {
		pkg  Package
		want int
	}{
		{Package{Sessions: 4, Price: 260}, 65},
		{Package{Sessions: 8, Price: 480}, 60},
		{Package{Sessions: 12, Price: 660}, 55},
		{Package{Sessions: 0, Price: 100}, 0},
	}
	for _, tt := range tests {
		if got := tt.pkg.PerSession(); got != tt.want {
			t.Errorf("expected %d per session, got %d", tt.want, got)
		}
	}
}
