package config

import (
	"image/color"
	"os"
	"time"
)

// Config holds the logical screen size. Layout keeps it in sync with the
// window so pages reflow when the window is resized.
type Config struct {
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	TPS       int
}

// AimDemoConfig contains the presentation values of the aiming demo. The
// hit-test values themselves live in aim.DefaultConfig.
type AimDemoConfig struct {
	PanelHeight     float64 // pixels
	TargetSize      float64 // pixels, clay sprite edge
	CrosshairSize   float64 // pixels
	GlideDuration   time.Duration
	SpinPeriod      time.Duration // one full revolution
	CrosshairFollow time.Duration // tween length toward each new pointer sample
	FlashRadius     float64       // pixels at scale 1
	FlashScale      float64       // final scale of the hit flash
	HintText        string
}

// FlightDiagramConfig contains the presentation values of the flight path
// diagram.
type FlightDiagramConfig struct {
	PanelHeight float64
	ClaySize    float64
	PathSamples int
}

// CrosshairConfig is the page-wide crosshair cursor shown on the home page.
type CrosshairConfig struct {
	Size   float64
	Color  color.RGBA
	Follow time.Duration
	Fade   time.Duration
}

// ScrollConfig contains page scrolling behavior.
type ScrollConfig struct {
	WheelStep    float64 // pixels per wheel notch
	KeyStep      float64 // pixels per arrow key repeat
	PageFraction float64 // fraction of the viewport moved by page up/down
	Smoothing    float64 // fraction of remaining distance covered per tick
	StickSpeed   float64 // pixels per tick at full analog deflection
}

// NavConfig contains navigation bar layout values.
type NavConfig struct {
	Height            float64
	CompactWidth      int     // below this window width the links collapse into a menu
	ScrolledThreshold float64 // scroll offset past which the bar turns opaque
	ClearColor        color.RGBA
	ScrolledColor     color.RGBA
	SlideIn           time.Duration // bar drops in from above when a page mounts
	ColorFade         time.Duration
}

// RevealConfig contains the animate-on-scroll defaults.
type RevealConfig struct {
	Distance float64
	Duration time.Duration
	Margin   float64
	Stagger  time.Duration // extra delay per item in a grid
}

// HeroConfig contains home page hero values.
type HeroConfig struct {
	HeightFraction float64 // of the viewport
	ClayFlight     time.Duration
	ClayPause      time.Duration
	ClaySize       float64
	BouncePeriod   time.Duration // scroll indicator
	BounceHeight   float64
}

// LayoutConfig contains page layout metrics.
type LayoutConfig struct {
	MaxContentWidth float64
	SidePadding     float64
	SectionPadding  float64
	CardGap         float64
	CardPadding     float64
	LineSpacing     float64
	FooterHeight    float64
	HoverLift       float64
	HoverDuration   time.Duration
}

// DebugConfig contains developer toggles.
type DebugConfig struct {
	StartPage     string
	ShowHitAreas  bool
	StartPageEnv  string
	HitAreasColor color.RGBA
}

var C *Config
var AimDemo AimDemoConfig
var FlightDiagram FlightDiagramConfig
var Crosshair CrosshairConfig
var Scroll ScrollConfig
var Nav NavConfig
var Reveal RevealConfig
var Hero HeroConfig
var Layout LayoutConfig
var Debug DebugConfig

// Site palette
var (
	TrapGreen     = color.RGBA{R: 0x3F, G: 0x4A, B: 0x3C, A: 255}
	TrapGreenSoft = color.RGBA{R: 0x5A, G: 0x6B, B: 0x55, A: 255}
	Orange        = color.RGBA{R: 0xF5, G: 0x66, B: 0x00, A: 255}
	OrangeLight   = color.RGBA{R: 0xFF, G: 0x7B, B: 0x2E, A: 255}
	Cream         = color.RGBA{R: 0xEA, G: 0xE6, B: 0xC3, A: 255}
	Charcoal      = color.RGBA{R: 0x2B, G: 0x2B, B: 0x2B, A: 255}
	Background    = color.RGBA{R: 0xFA, G: 0xFA, B: 0xF7, A: 255}
	White         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SkyTop        = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 255}
	SkyBottom     = color.RGBA{R: 0xB0, G: 0xD4, B: 0xE8, A: 255}
	Traphouse     = color.RGBA{R: 0x8B, G: 0x73, B: 0x55, A: 255}
	Muted         = Fade(Charcoal, 0.6)
	CardShadow    = color.RGBA{R: 0, G: 0, B: 0, A: 24}
)

// Fade scales a color's alpha. color.RGBA is premultiplied, so every
// channel is scaled.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func init() {
	C = &Config{
		Width:     1280,
		Height:    720,
		MinWidth:  480,
		MinHeight: 360,
		TPS:       60,
	}

	AimDemo = AimDemoConfig{
		PanelHeight:     320,
		TargetSize:      40,
		CrosshairSize:   50,
		GlideDuration:   600 * time.Millisecond,
		SpinPeriod:      2 * time.Second,
		CrosshairFollow: 80 * time.Millisecond,
		FlashRadius:     40,
		FlashScale:      2,
		HintText:        "Click on the clay target!",
	}

	FlightDiagram = FlightDiagramConfig{
		PanelHeight: 320,
		ClaySize:    48,
		PathSamples: 48,
	}

	Crosshair = CrosshairConfig{
		Size:   60,
		Color:  Orange,
		Follow: 100 * time.Millisecond,
		Fade:   150 * time.Millisecond,
	}

	Scroll = ScrollConfig{
		WheelStep:    60,
		KeyStep:      40,
		PageFraction: 0.9,
		Smoothing:    0.2,
		StickSpeed:   18,
	}

	Nav = NavConfig{
		Height:            64,
		CompactWidth:      768,
		ScrolledThreshold: 20,
		ClearColor:        Fade(TrapGreen, 0),
		ScrolledColor:     Fade(TrapGreen, 0.95),
		SlideIn:           500 * time.Millisecond,
		ColorFade:         300 * time.Millisecond,
	}

	Reveal = RevealConfig{
		Distance: 60,
		Duration: 600 * time.Millisecond,
		Margin:   100,
		Stagger:  100 * time.Millisecond,
	}

	Hero = HeroConfig{
		HeightFraction: 1,
		ClayFlight:     3 * time.Second,
		ClayPause:      2 * time.Second,
		ClaySize:       50,
		BouncePeriod:   1500 * time.Millisecond,
		BounceHeight:   8,
	}

	Layout = LayoutConfig{
		MaxContentWidth: 1100,
		SidePadding:     24,
		SectionPadding:  80,
		CardGap:         24,
		CardPadding:     24,
		LineSpacing:     1.25,
		FooterHeight:    160,
		HoverLift:       8,
		HoverDuration:   200 * time.Millisecond,
	}

	Debug = DebugConfig{
		StartPage:     "home",
		StartPageEnv:  "TRAPSCHOOL_PAGE",
		HitAreasColor: color.RGBA{R: 160, G: 0, B: 160, A: 160},
	}
	if page := os.Getenv(Debug.StartPageEnv); page != "" {
		Debug.StartPage = page
	}
}

// TickDuration is the simulated time covered by one Update.
func TickDuration() time.Duration {
	if C.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(C.TPS)
}
