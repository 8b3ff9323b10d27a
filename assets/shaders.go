package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GradientShader fills a rectangle with a vertical two-color gradient
	GradientShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/gradient.kage")
	if err != nil {
		return fmt.Errorf("read gradient shader: %w", err)
	}
	GradientShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile gradient shader: %w", err)
	}
	return nil
}
