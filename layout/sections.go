package layout

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/fonts"
)

// LayoutSection dispatches on the section kind.
func LayoutSection(sec content.Section, m Metrics) Section {
	switch sec.Kind {
	case content.KindHero:
		return layoutHero(sec, m)
	case content.KindIntro:
		return layoutIntro(sec, m)
	case content.KindCards:
		return layoutCards(sec, m)
	case content.KindStats:
		return layoutStats(sec, m)
	case content.KindList:
		return layoutList(sec, m)
	case content.KindSteps:
		return layoutSteps(sec, m)
	case content.KindDiagram:
		return layoutPanel(sec, m, BlockDiagram, cfg.FlightDiagram.PanelHeight, cfg.Fade(cfg.Cream, 0.3))
	case content.KindDemo:
		return layoutPanel(sec, m, BlockDemo, cfg.AimDemo.PanelHeight, cfg.Background)
	case content.KindPricing:
		return layoutPricing(sec, m)
	case content.KindPackages:
		return layoutPackages(sec, m)
	case content.KindSchedule:
		return layoutSchedule(sec, m)
	case content.KindCTA:
		return layoutCTA(sec, m)
	}
	return Section{Kind: sec.Kind, Background: cfg.Background}
}

func layoutHero(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	height := math.Max(m.ViewportHeight*cfg.Hero.HeightFraction, 480)

	// measure the text stack first so it can be centered vertically
	probe := newBuilder(m)
	probe.y = 0
	heroText(probe, sec)
	b.y = math.Max(cfg.Nav.Height+24, (height-probe.y)/2)
	start := len(b.blocks)
	heroText(b, sec)
	for i := start; i < len(b.blocks); i++ {
		b.blocks[i].Parallax = true
	}

	b.add(Block{
		Kind:  BlockIndicator,
		X:     m.Width/2 - 12,
		Y:     height - 72,
		W:     24,
		H:     40,
		Text:  "Scroll",
		Font:  fonts.Small,
		Color: cfg.Fade(cfg.White, 0.7),
		Item:  -1,
	})

	return Section{
		Kind:       sec.Kind,
		Height:     height,
		Background: cfg.TrapGreen,
		Blocks:     b.blocks,
	}
}

func heroText(b *builder, sec content.Section) {
	if sec.Eyebrow != "" {
		face := fonts.Eyebrow.Get()
		w := float64(fonts.Measure(face, sec.Eyebrow)) + 40
		h := LineHeight(fonts.Eyebrow) + 12
		b.add(Block{
			Kind:   BlockBadge,
			X:      b.m.ColumnX + (b.m.ColumnW-w)/2,
			Y:      b.y,
			W:      w,
			H:      h,
			Text:   sec.Eyebrow,
			Font:   fonts.Eyebrow,
			Color:  cfg.Orange,
			Fill:   cfg.Fade(cfg.Orange, 0.2),
			Radius: h / 2,
			Item:   -1,
		})
		b.y += h + 24
	}
	b.text(fonts.Display, sec.Heading, cfg.White, AlignCenter, 0)
	b.text(fonts.Display, sec.Accent, cfg.Orange, AlignCenter, 24)
	b.narrowText(fonts.Body, sec.Body, 640, cfg.Fade(cfg.Cream, 0.9), 40)
	b.buttons(sec.Buttons, cfg.Orange, cfg.Fade(cfg.White, 0.12), cfg.White, cfg.White, true)
}

func layoutIntro(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	b.y = cfg.Nav.Height + cfg.Layout.SectionPadding
	b.text(fonts.Eyebrow, sec.Eyebrow, cfg.Orange, AlignCenter, 12)
	b.text(fonts.Title, sec.Heading, cfg.White, AlignCenter, 20)
	b.narrowText(fonts.Body, sec.Body, 760, cfg.Fade(cfg.Cream, 0.9), 0)
	return b.finish(sec.Kind, cfg.TrapGreen)
}

// card lays out one icon card at (x,y) of width w and returns its height.
func (b *builder) card(c content.Card, x, y, w float64, item int, withIcon bool) float64 {
	pad := cfg.Layout.CardPadding
	cardIndex := len(b.blocks)
	b.add(Block{Kind: BlockCard, X: x, Y: y, W: w, Fill: cfg.White, Radius: 16, Item: item})

	cy := y + pad
	if withIcon {
		b.add(Block{Kind: BlockCircle, X: x + pad, Y: cy, W: 48, H: 48, Fill: cfg.Fade(cfg.Orange, 0.15), Color: cfg.Orange, Item: item})
		cy += 48 + 16
	}
	cy += b.textAt(fonts.BodyBold, c.Title, x+pad, cy, w-2*pad, cfg.Charcoal, AlignLeft, item) + 8
	cy += b.textAt(fonts.Small, c.Body, x+pad, cy, w-2*pad, cfg.Muted, AlignLeft, item)
	h := cy + pad - y
	b.blocks[cardIndex].H = h
	return h
}

// grid places n cells of equal width, each measured by cell, and returns
// the total height. Rows share the height of their tallest cell.
func (b *builder) grid(n, maxCols int, cell func(i int, x, y, w float64) float64) float64 {
	if n == 0 {
		return 0
	}
	gap := cfg.Layout.CardGap
	cols := b.m.Columns(n, maxCols)
	w := (b.m.ColumnW - gap*float64(cols-1)) / float64(cols)
	top := b.y
	y := top
	for row := 0; row*cols < n; row++ {
		rowH := 0.0
		rowStart := len(b.blocks)
		for col := 0; col < cols && row*cols+col < n; col++ {
			i := row*cols + col
			x := b.m.ColumnX + float64(col)*(w+gap)
			rowH = math.Max(rowH, cell(i, x, y, w))
		}
		// stretch the row's cards to a common height
		for j := rowStart; j < len(b.blocks); j++ {
			if b.blocks[j].Kind == BlockCard && b.blocks[j].Y == y {
				b.blocks[j].H = rowH
			}
		}
		y += rowH + gap
	}
	return y - gap - top
}

func layoutCards(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	b.header(sec, false)
	maxCols := 3
	if len(sec.Cards) == 4 {
		maxCols = 4
	}
	b.y += b.grid(len(sec.Cards), maxCols, func(i int, x, y, w float64) float64 {
		return b.card(sec.Cards[i], x, y, w, b.nextItem(), true)
	})
	return b.finish(sec.Kind, cfg.Background)
}

func layoutStats(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	b.y = 64
	b.header(sec, true)
	b.y += b.grid(len(sec.Stats), 4, func(i int, x, y, w float64) float64 {
		item := b.nextItem()
		st := sec.Stats[i]
		h := b.textAt(fonts.Title, st.Value, x, y, w, cfg.Orange, AlignCenter, item)
		h += b.textAt(fonts.Small, st.Label, x, y+h+4, w, cfg.Fade(cfg.Cream, 0.8), AlignCenter, item) + 4
		return h
	})
	b.y -= cfg.Layout.SectionPadding - 64
	return b.finish(sec.Kind, cfg.TrapGreen)
}

func layoutList(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	dark := sec.Direction == "left"
	b.header(sec, dark)

	textColor, bg, rowFill := cfg.Charcoal, cfg.Fade(cfg.Cream, 0.3), cfg.White
	if dark {
		textColor, bg, rowFill = cfg.White, cfg.TrapGreen, cfg.Fade(cfg.White, 0.06)
	}

	maxCols := 1
	if !dark {
		maxCols = 4
	}
	b.y += b.grid(len(sec.Items), maxCols, func(i int, x, y, w float64) float64 {
		item := b.nextItem()
		lh := LineHeight(fonts.Body)
		textW := w - 2*20 - 36
		h := math.Max(b.measure(fonts.Body, sec.Items[i], textW), lh) + 32
		b.add(Block{Kind: BlockRect, X: x, Y: y, W: w, H: h, Fill: rowFill, Radius: 12, Item: item})
		b.add(Block{Kind: BlockCheck, X: x + 20, Y: y + (h-24)/2, W: 24, H: 24, Fill: cfg.Orange, Color: cfg.White, Item: item})
		b.textAt(fonts.Body, sec.Items[i], x+20+36, y+16, textW, textColor, AlignLeft, item)
		return h
	})
	return b.finish(sec.Kind, bg)
}

// measure returns the wrapped height of s without adding blocks.
func (b *builder) measure(name fonts.FontName, s string, w float64) float64 {
	lines := fonts.Wrap(name.Get(), s, int(w))
	return float64(len(lines)) * LineHeight(name)
}

func layoutSteps(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	b.header(sec, false)

	numberW := 140.0
	if m.ColumnW < 600 {
		numberW = 0
	}
	textX := m.ColumnX + numberW
	textW := m.ColumnW - numberW
	for _, st := range sec.Steps {
		item := b.nextItem()
		top := b.y
		if numberW > 0 {
			b.textAt(fonts.Display, st.Number, m.ColumnX, top, numberW, cfg.Fade(cfg.Orange, 0.25), AlignLeft, item)
		} else {
			b.y += b.textAt(fonts.Title, st.Number, textX, b.y, textW, cfg.Fade(cfg.Orange, 0.4), AlignLeft, item)
		}
		b.y += b.textAt(fonts.Heading, st.Title, textX, b.y, textW, cfg.Charcoal, AlignLeft, item) + 12
		b.y += b.textAt(fonts.Body, st.Body, textX, b.y, textW, cfg.Muted, AlignLeft, item) + 16
		for _, tip := range st.Tips {
			lh := LineHeight(fonts.Small)
			b.add(Block{Kind: BlockCircle, X: textX, Y: b.y + lh/2 - 4, W: 8, H: 8, Fill: cfg.Orange, Item: item})
			b.y += b.textAt(fonts.Small, tip, textX+20, b.y, textW-20, cfg.Charcoal, AlignLeft, item) + 6
		}
		b.y = math.Max(b.y, top+LineHeight(fonts.Display)) + 56
	}
	b.y -= 56
	return b.finish(sec.Kind, cfg.Background)
}

func layoutPanel(sec content.Section, m Metrics, kind BlockKind, height float64, bg color.RGBA) Section {
	b := newBuilder(m)
	b.header(sec, false)
	b.add(Block{Kind: kind, X: m.ColumnX, Y: b.y, W: m.ColumnW, H: height, Radius: 16, Item: -1})
	b.y += height
	return b.finish(sec.Kind, bg)
}

func layoutPricing(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	b.header(sec, false)
	b.y += 16 // room for the popular badge
	b.y += b.grid(len(sec.Classes), 3, func(i int, x, y, w float64) float64 {
		return b.pricingCard(sec.Classes[i], x, y, w, b.nextItem())
	})
	return b.finish(sec.Kind, cfg.Background)
}

func (b *builder) pricingCard(c content.Class, x, y, w float64, item int) float64 {
	pad := cfg.Layout.CardPadding + 8
	cardIndex := len(b.blocks)
	fill, title, body := cfg.White, cfg.Charcoal, cfg.Muted
	if c.Popular {
		fill, title, body = cfg.TrapGreen, cfg.White, cfg.Fade(cfg.Cream, 0.85)
	}
	b.add(Block{Kind: BlockCard, X: x, Y: y, W: w, Fill: fill, Radius: 20, Item: item, Highlight: c.Popular})

	if c.Popular {
		label := "Most Popular"
		bw := float64(fonts.Measure(fonts.Eyebrow.Get(), label)) + 32
		bh := LineHeight(fonts.Eyebrow) + 8
		b.add(Block{
			Kind:   BlockBadge,
			X:      x + (w-bw)/2,
			Y:      y - bh/2,
			W:      bw,
			H:      bh,
			Text:   label,
			Font:   fonts.Eyebrow,
			Color:  cfg.White,
			Fill:   cfg.Orange,
			Radius: bh / 2,
			Item:   item,
		})
	}

	cy := y + pad
	cy += b.textAt(fonts.Heading, c.Title, x+pad, cy, w-2*pad, title, AlignCenter, item) + 12
	price := fmt.Sprintf("$%d", c.Price)
	cy += b.textAt(fonts.Title, price, x+pad, cy, w-2*pad, cfg.Orange, AlignCenter, item)
	if c.Duration != "" {
		cy += b.textAt(fonts.Small, "per "+c.Duration, x+pad, cy, w-2*pad, body, AlignCenter, item)
	}
	cy += 24
	for _, f := range c.Features {
		lh := LineHeight(fonts.Small)
		b.add(Block{Kind: BlockCheck, X: x + pad, Y: cy + (lh-18)/2, W: 18, H: 18, Fill: cfg.Orange, Color: cfg.White, Item: item})
		cy += b.textAt(fonts.Small, f, x+pad+28, cy, w-2*pad-28, title, AlignLeft, item) + 8
	}
	cy += 16

	label := "Book Now"
	bw, bh := buttonSize(label)
	bw = w - 2*pad
	primary, text := cfg.Orange, cfg.White
	if c.Popular {
		primary, text = cfg.White, cfg.TrapGreen
	}
	b.add(Block{
		Kind:      BlockButton,
		X:         x + pad,
		Y:         cy,
		W:         bw,
		H:         bh,
		Text:      label,
		Font:      fonts.BodyBold,
		Color:     text,
		Fill:      primary,
		Radius:    bh / 2,
		Link:      &content.Link{Label: label, Href: BookingHref},
		Item:      item,
		Highlight: true,
	})
	cy += bh

	h := cy + pad - y
	b.blocks[cardIndex].H = h
	return h
}

// BookingHref is where every booking button leads.
const BookingHref = "tel:+1234567890"

func layoutPackages(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	b.header(sec, false)
	b.y += b.grid(len(sec.Packages), 3, func(i int, x, y, w float64) float64 {
		item := b.nextItem()
		p := sec.Packages[i]
		pad := cfg.Layout.CardPadding
		cardIndex := len(b.blocks)
		b.add(Block{Kind: BlockCard, X: x, Y: y, W: w, Fill: cfg.White, Radius: 16, Item: item})

		cy := y + pad
		cy += b.textAt(fonts.BodyBold, p.Name, x+pad, cy, w-2*pad, cfg.Charcoal, AlignCenter, item)
		cy += b.textAt(fonts.Small, fmt.Sprintf("%d sessions", p.Sessions), x+pad, cy, w-2*pad, cfg.Muted, AlignCenter, item) + 8
		cy += b.textAt(fonts.Title, fmt.Sprintf("$%d", p.Price), x+pad, cy, w-2*pad, cfg.TrapGreen, AlignCenter, item)
		cy += b.textAt(fonts.Small, fmt.Sprintf("$%d/session", p.PerSession()), x+pad, cy, w-2*pad, cfg.Muted, AlignCenter, item) + 12

		if p.Savings > 0 {
			label := fmt.Sprintf("Save $%d", p.Savings)
			bw := float64(fonts.Measure(fonts.Eyebrow.Get(), label)) + 28
			bh := LineHeight(fonts.Eyebrow) + 8
			b.add(Block{
				Kind:   BlockBadge,
				X:      x + (w-bw)/2,
				Y:      cy,
				W:      bw,
				H:      bh,
				Text:   label,
				Font:   fonts.Eyebrow,
				Color:  cfg.Orange,
				Fill:   cfg.Fade(cfg.Orange, 0.12),
				Radius: bh / 2,
				Item:   item,
			})
			cy += bh
		}

		h := cy + pad - y
		b.blocks[cardIndex].H = h
		return h
	})
	return b.finish(sec.Kind, cfg.Fade(cfg.Cream, 0.3))
}

func layoutSchedule(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	b.header(sec, false)

	gap := cfg.Layout.CardGap
	cols := m.Columns(2, 2)
	w := (m.ColumnW - gap*float64(cols-1)) / float64(cols)
	pad := cfg.Layout.CardPadding
	top := b.y

	// schedule card
	item := b.nextItem()
	x := m.ColumnX
	cardIndex := len(b.blocks)
	b.add(Block{Kind: BlockCard, X: x, Y: top, W: w, Fill: cfg.White, Radius: 16, Item: item})
	cy := top + pad
	cy += b.textAt(fonts.Heading, "When", x+pad, cy, w-2*pad, cfg.Charcoal, AlignLeft, item) + 12
	for _, s := range sec.Slots {
		rowH := LineHeight(fonts.BodyBold)
		b.textAt(fonts.BodyBold, s.Day, x+pad, cy, (w-2*pad)/2, cfg.Charcoal, AlignLeft, item)
		rowH = math.Max(rowH, b.textAt(fonts.Body, s.Time, x+pad+(w-2*pad)/2, cy, (w-2*pad)/2, cfg.Muted, AlignLeft, item))
		cy += rowH + 10
	}
	leftH := cy + pad - 10 - top

	// contact card
	item = b.nextItem()
	cx, cyTop := m.ColumnX+w+gap, top
	if cols == 1 {
		cx, cyTop = m.ColumnX, top+leftH+gap
	}
	contactIndex := len(b.blocks)
	b.add(Block{Kind: BlockCard, X: cx, Y: cyTop, W: w, Fill: cfg.TrapGreen, Radius: 16, Item: item})
	cy = cyTop + pad
	cy += b.textAt(fonts.Heading, "Get in Touch", cx+pad, cy, w-2*pad, cfg.White, AlignLeft, item) + 12
	for _, c := range sec.Contacts {
		cy += b.textAt(fonts.Small, c.Label, cx+pad, cy, w-2*pad, cfg.Fade(cfg.Cream, 0.7), AlignLeft, item)
		cy += b.textAt(fonts.BodyBold, c.Value, cx+pad, cy, w-2*pad, cfg.White, AlignLeft, item) + 10
	}
	rightH := cy + pad - 10 - cyTop

	if cols == 2 {
		h := math.Max(leftH, rightH)
		b.blocks[cardIndex].H = h
		b.blocks[contactIndex].H = h
		b.y = top + h
	} else {
		b.blocks[cardIndex].H = leftH
		b.blocks[contactIndex].H = rightH
		b.y = cyTop + rightH
	}
	return b.finish(sec.Kind, cfg.Background)
}

func layoutCTA(sec content.Section, m Metrics) Section {
	b := newBuilder(m)
	b.text(fonts.Title, sec.Heading, cfg.White, AlignCenter, 16)
	b.narrowText(fonts.Body, sec.Body, 640, cfg.Fade(cfg.White, 0.9), 32)
	b.buttons(sec.Buttons, cfg.White, cfg.Fade(cfg.White, 0.15), cfg.Orange, cfg.White, false)
	return b.finish(sec.Kind, cfg.Orange)
}

// KindFooter marks the footer section, which is not part of page content.
const KindFooter content.Kind = "footer"

// LayoutFooter lays out the site footer: brand, page links, contact and
// copyright.
func LayoutFooter(site *content.Site, m Metrics) Section {
	b := newBuilder(m)
	b.y = 48

	brandW := float64(fonts.Measure(fonts.Heading.Get(), site.Brand))
	b.add(Block{Kind: BlockText, X: m.ColumnX, Y: b.y, W: brandW, H: LineHeight(fonts.Heading), Text: site.Brand, Font: fonts.Heading, Color: cfg.White, Item: -1})
	accentW := float64(fonts.Measure(fonts.Heading.Get(), site.BrandAccent))
	b.add(Block{Kind: BlockText, X: m.ColumnX + brandW, Y: b.y, W: accentW, H: LineHeight(fonts.Heading), Text: site.BrandAccent, Font: fonts.Heading, Color: cfg.Orange, Item: -1})
	b.y += LineHeight(fonts.Heading) + 16

	x := m.ColumnX
	lh := LineHeight(fonts.Small)
	for _, item := range site.Nav {
		w := float64(fonts.Measure(fonts.Small.Get(), item.Name)) + 8
		if x+w > m.ColumnX+m.ColumnW {
			x = m.ColumnX
			b.y += lh + 8
		}
		link := content.Link{Label: item.Name, Page: item.Page}
		b.add(Block{
			Kind:  BlockButton,
			X:     x,
			Y:     b.y,
			W:     w,
			H:     lh,
			Text:  item.Name,
			Font:  fonts.Small,
			Color: cfg.Fade(cfg.Cream, 0.8),
			Link:  &link,
			Item:  -1,
		})
		x += w + 24
	}
	b.y += lh + 24

	b.add(Block{Kind: BlockRect, X: m.ColumnX, Y: b.y, W: m.ColumnW, H: 1, Fill: cfg.Fade(cfg.White, 0.1), Item: -1})
	b.y += 16
	b.y += b.textAt(fonts.Small, site.Copyright, m.ColumnX, b.y, m.ColumnW, cfg.Fade(cfg.Cream, 0.5), AlignLeft, -1)

	return Section{
		Kind:       KindFooter,
		Height:     math.Max(math.Ceil(b.y+32), cfg.Layout.FooterHeight),
		Background: cfg.Charcoal,
		Blocks:     b.blocks,
	}
}
