// Package content loads the copy for every page of the site from YAML.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteFS embed.FS

// PageID names a page. It doubles as the route key.
type PageID string

const (
	PageHome       PageID = "home"
	PageWhatIsTrap PageID = "whatistrap"
	PageHowToAim   PageID = "howtoaim"
	PageClasses    PageID = "classes"
)

// Kind is the layout used for a section.
type Kind string

const (
	KindHero     Kind = "hero"
	KindIntro    Kind = "intro"
	KindCards    Kind = "cards"
	KindStats    Kind = "stats"
	KindList     Kind = "list"
	KindSteps    Kind = "steps"
	KindDiagram  Kind = "diagram"
	KindDemo     Kind = "demo"
	KindPricing  Kind = "pricing"
	KindPackages Kind = "packages"
	KindSchedule Kind = "schedule"
	KindCTA      Kind = "cta"
)

var knownKinds = map[Kind]bool{
	KindHero: true, KindIntro: true, KindCards: true, KindStats: true,
	KindList: true, KindSteps: true, KindDiagram: true, KindDemo: true,
	KindPricing: true, KindPackages: true, KindSchedule: true, KindCTA: true,
}

type Link struct {
	Label string `yaml:"label"`
	Page  PageID `yaml:"page"`
	Href  string `yaml:"href"`
}

type Card struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Step struct {
	Number string   `yaml:"number"`
	Title  string   `yaml:"title"`
	Body   string   `yaml:"body"`
	Tips   []string `yaml:"tips"`
}

type Class struct {
	Title    string   `yaml:"title"`
	Price    int      `yaml:"price"`
	Duration string   `yaml:"duration"`
	Features []string `yaml:"features"`
	Popular  bool     `yaml:"popular"`
}

type Package struct {
	Name     string `yaml:"name"`
	Sessions int    `yaml:"sessions"`
	Price    int    `yaml:"price"`
	Savings  int    `yaml:"savings"`
}

// PerSession is the package price divided across its sessions.
func (p Package) PerSession() int {
	if p.Sessions <= 0 {
		return 0
	}
	return p.Price / p.Sessions
}

type Slot struct {
	Day  string `yaml:"day"`
	Time string `yaml:"time"`
}

type Contact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Section is one vertical block of a page. Only the fields its Kind uses
// are set.
type Section struct {
	Kind      Kind      `yaml:"kind"`
	Eyebrow   string    `yaml:"eyebrow"`
	Heading   string    `yaml:"heading"`
	Accent    string    `yaml:"accent"`
	Body      string    `yaml:"body"`
	Direction string    `yaml:"direction"`
	Buttons   []Link    `yaml:"buttons"`
	Cards     []Card    `yaml:"cards"`
	Stats     []Stat    `yaml:"stats"`
	Items     []string  `yaml:"items"`
	Steps     []Step    `yaml:"steps"`
	Classes   []Class   `yaml:"classes"`
	Packages  []Package `yaml:"packages"`
	Slots     []Slot    `yaml:"slots"`
	Contacts  []Contact `yaml:"contacts"`
}

type Page struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

type NavItem struct {
	Name string `yaml:"name"`
	Page PageID `yaml:"page"`
}

// Site is the whole content tree.
type Site struct {
	Brand       string          `yaml:"brand"`
	BrandAccent string          `yaml:"brandAccent"`
	Copyright   string          `yaml:"copyright"`
	Nav         []NavItem       `yaml:"nav"`
	CTA         Link            `yaml:"cta"`
	Pages       map[PageID]Page `yaml:"pages"`
}

// Page returns the page with the given id.
func (s *Site) Page(id PageID) (Page, bool) {
	p, ok := s.Pages[id]
	return p, ok
}

// Load parses and validates the site file at path in fsys.
func Load(fsys fs.FS, path string) (*Site, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a site document.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Default loads the embedded site content.
func Default() (*Site, error) {
	return Load(siteFS, "site.yaml")
}

// Validate checks that every link points at a known page and every section
// has a known kind.
func (s *Site) Validate() error {
	if len(s.Pages) == 0 {
		return fmt.Errorf("content has no pages")
	}
	var problems []string
	checkLink := func(where string, l Link) {
		if l.Page == "" && l.Href == "" {
			problems = append(problems, fmt.Sprintf("%s: link %q has no target", where, l.Label))
			return
		}
		if l.Page != "" {
			if _, ok := s.Pages[l.Page]; !ok {
				problems = append(problems, fmt.Sprintf("%s: link %q points at unknown page %q", where, l.Label, l.Page))
			}
		}
	}

	for _, item := range s.Nav {
		checkLink("nav", Link{Label: item.Name, Page: item.Page})
	}
	if s.CTA.Label != "" {
		checkLink("cta", s.CTA)
	}
	for id, page := range s.Pages {
		for i, sec := range page.Sections {
			where := fmt.Sprintf("%s section %d", id, i)
			if !knownKinds[sec.Kind] {
				problems = append(problems, fmt.Sprintf("%s: unknown kind %q", where, sec.Kind))
			}
			for _, b := range sec.Buttons {
				checkLink(where, b)
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid content: %s", strings.Join(problems, "; "))
	}
	return nil
}
