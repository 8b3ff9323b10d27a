// Package layout turns page content into positioned blocks. It measures text
// with the loaded font faces but never draws, so it runs without a window.
package layout

import (
	"image/color"
	"math"

	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/fonts"
)

// BlockKind tells the renderer how to draw a block.
type BlockKind int

const (
	BlockRect BlockKind = iota
	BlockText
	BlockCard
	BlockButton
	BlockCircle
	BlockCheck
	BlockBadge
	BlockDemo
	BlockDiagram
	BlockIndicator
)

// Align is the horizontal alignment of a text line inside its box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Block is one drawable element. Coordinates are relative to the top-left
// of its section.
type Block struct {
	Kind       BlockKind
	X, Y, W, H float64
	Text       string
	Font       fonts.FontName
	Color      color.RGBA // text or stroke
	Fill       color.RGBA
	Radius     float64
	Link       *content.Link
	Item       int  // staggered reveal index, -1 when the block follows the section
	Highlight  bool // popular card, primary button
	Parallax   bool // moves with the hero text
}

// Hoverable reports whether the block reacts to the pointer.
func (b Block) Hoverable() bool {
	return b.Kind == BlockCard || b.Kind == BlockButton
}

// Section is a laid-out content section.
type Section struct {
	Kind       content.Kind
	Height     float64
	Background color.RGBA
	Blocks     []Block
	Items      int // number of staggered reveal items
}

// Page is a laid-out page, sections stacked top to bottom.
type Page struct {
	Width    float64
	Sections []Section
	Tops     []float64
	Height   float64
}

// Metrics are the column a page is laid out in.
type Metrics struct {
	Width          float64 // screen width
	ViewportHeight float64
	ColumnX        float64
	ColumnW        float64
}

// NewMetrics centers a content column of at most MaxContentWidth.
func NewMetrics(width, viewportHeight float64) Metrics {
	cw := math.Min(width-2*cfg.Layout.SidePadding, cfg.Layout.MaxContentWidth)
	if cw < 0 {
		cw = 0
	}
	return Metrics{
		Width:          width,
		ViewportHeight: viewportHeight,
		ColumnX:        (width - cw) / 2,
		ColumnW:        cw,
	}
}

// Columns is how many grid columns fit n items in the content column.
func (m Metrics) Columns(n, max int) int {
	cols := max
	switch {
	case m.ColumnW < 600:
		cols = 1
	case m.ColumnW < 900:
		cols = 2
	}
	if cols > n {
		cols = n
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// LayoutPage lays out every section of page followed by the footer.
func LayoutPage(site *content.Site, page content.Page, width, viewportHeight float64) Page {
	m := NewMetrics(width, viewportHeight)
	out := Page{Width: width}
	y := 0.0
	for _, sec := range page.Sections {
		s := LayoutSection(sec, m)
		out.Sections = append(out.Sections, s)
		out.Tops = append(out.Tops, y)
		y += s.Height
	}
	footer := LayoutFooter(site, m)
	out.Sections = append(out.Sections, footer)
	out.Tops = append(out.Tops, y)
	y += footer.Height
	out.Height = y
	return out
}

// LineHeight is the distance between wrapped lines for a face.
func LineHeight(name fonts.FontName) float64 {
	return math.Ceil(float64(fonts.LineHeight(name.Get())) * cfg.Layout.LineSpacing)
}

// builder accumulates blocks for one section with a vertical cursor.
type builder struct {
	m      Metrics
	y      float64
	blocks []Block
	items  int
}

func newBuilder(m Metrics) *builder {
	return &builder{m: m, y: cfg.Layout.SectionPadding}
}

func (b *builder) add(bl Block) {
	b.blocks = append(b.blocks, bl)
}

// textAt wraps s into the box starting at (x,y) and returns its height.
func (b *builder) textAt(name fonts.FontName, s string, x, y, w float64, clr color.RGBA, align Align, item int) float64 {
	face := name.Get()
	lh := LineHeight(name)
	lines := fonts.Wrap(face, s, int(w))
	for i, line := range lines {
		lx := x
		lw := float64(fonts.Measure(face, line))
		if align == AlignCenter {
			lx = x + (w-lw)/2
		}
		b.add(Block{
			Kind:  BlockText,
			X:     lx,
			Y:     y + float64(i)*lh,
			W:     lw,
			H:     lh,
			Text:  line,
			Font:  name,
			Color: clr,
			Item:  item,
		})
	}
	return float64(len(lines)) * lh
}

// text flows s across the content column at the cursor.
func (b *builder) text(name fonts.FontName, s string, clr color.RGBA, align Align, gap float64) {
	if s == "" {
		return
	}
	b.y += b.textAt(name, s, b.m.ColumnX, b.y, b.m.ColumnW, clr, align, -1) + gap
}

// narrowText flows s in a centered box no wider than maxW.
func (b *builder) narrowText(name fonts.FontName, s string, maxW float64, clr color.RGBA, gap float64) {
	if s == "" {
		return
	}
	w := math.Min(maxW, b.m.ColumnW)
	x := b.m.ColumnX + (b.m.ColumnW-w)/2
	b.y += b.textAt(name, s, x, b.y, w, clr, AlignCenter, -1) + gap
}

// buttonSize returns the pill size that fits label.
func buttonSize(label string) (float64, float64) {
	w := float64(fonts.Measure(fonts.BodyBold.Get(), label)) + 64
	return w, LineHeight(fonts.BodyBold) + 24
}

// buttons lays out a centered row of pill buttons at the cursor.
func (b *builder) buttons(links []content.Link, primary, secondary, labelPrimary, labelSecondary color.RGBA, parallax bool) {
	if len(links) == 0 {
		return
	}
	const gap = 16.0
	total := 0.0
	height := 0.0
	for i, l := range links {
		w, h := buttonSize(l.Label)
		total += w
		if i > 0 {
			total += gap
		}
		height = math.Max(height, h)
	}

	vertical := total > b.m.ColumnW
	x := b.m.ColumnX + (b.m.ColumnW-total)/2
	for i := range links {
		l := links[i]
		w, h := buttonSize(l.Label)
		fill, clr := primary, labelPrimary
		if i > 0 {
			fill, clr = secondary, labelSecondary
		}
		if vertical {
			x = b.m.ColumnX + (b.m.ColumnW-w)/2
		}
		b.add(Block{
			Kind:      BlockButton,
			X:         x,
			Y:         b.y,
			W:         w,
			H:         h,
			Text:      l.Label,
			Font:      fonts.BodyBold,
			Color:     clr,
			Fill:      fill,
			Radius:    h / 2,
			Link:      &l,
			Item:      -1,
			Highlight: i == 0,
			Parallax:  parallax,
		})
		if vertical {
			b.y += h + gap
		} else {
			x += w + gap
		}
	}
	if !vertical {
		b.y += height
	}
}

// header lays out the eyebrow, heading and intro paragraph most sections
// open with.
func (b *builder) header(sec content.Section, onDark bool) {
	heading, body := cfg.Charcoal, cfg.Muted
	if onDark {
		heading, body = cfg.White, cfg.Fade(cfg.Cream, 0.85)
	}
	b.text(fonts.Eyebrow, sec.Eyebrow, cfg.Orange, AlignCenter, 12)
	b.text(fonts.Title, sec.Heading, heading, AlignCenter, 16)
	b.narrowText(fonts.Body, sec.Body, 700, body, 0)
	if sec.Eyebrow != "" || sec.Heading != "" || sec.Body != "" {
		b.y += 48
	}
}

func (b *builder) nextItem() int {
	i := b.items
	b.items++
	return i
}

func (b *builder) finish(kind content.Kind, bg color.RGBA) Section {
	return Section{
		Kind:       kind,
		Height:     math.Ceil(b.y + cfg.Layout.SectionPadding),
		Background: bg,
		Blocks:     b.blocks,
		Items:      b.items,
	}
}
