package components

import (
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/scroll"
	"github.com/yohamta/donburi"
)

// SectionData is one laid-out block of the page. Top and Height are in page
// space.
type SectionData struct {
	Index   int
	Section content.Section
	Top     float64
	Height  float64
	Reveal  *scroll.Reveal
	Items   []*scroll.Reveal // staggered reveals for the section's cards or rows
}

var Section = donburi.NewComponentType[SectionData]()
