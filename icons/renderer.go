package icons

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Render produces one icon image: vertical gradient background, rounded
// corners, and the centered text label with a drop shadow.
func (c Config) Render(size int) (*image.NRGBA, error) {
	out, err := c.background(size)
	if err != nil {
		return nil, err
	}
	drawLabel(out, loadFace(c.FontPath, size), c.Label)
	return out, nil
}

// RenderLogo is like Render but composites the given SVG document over the
// gradient instead of the text label. The logo is scaled to 70% of the icon
// side and centered.
func (c Config) RenderLogo(size int, svgData []byte) (*image.NRGBA, error) {
	out, err := c.background(size)
	if err != nil {
		return nil, err
	}

	side := size * 7 / 10
	if side < 1 {
		side = 1
	}
	logo, err := svgToImage(svgData, side, side)
	if err != nil {
		return nil, fmt.Errorf("rasterize logo: %w", err)
	}

	offset := (size - side) / 2
	rect := image.Rect(offset, offset, offset+side, offset+side)
	draw.Draw(out, rect, logo, image.Point{}, draw.Over)
	return out, nil
}

// background builds the masked gradient common to both icon styles
func (c Config) background(size int) (*image.NRGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}
	grad := gradient(size, c.Top, c.Bottom)
	mask := roundedMask(size, size/5)
	return composite(grad, mask), nil
}

// Generate renders every configured size and writes the PNG files under
// OutDir, creating the directory if needed and overwriting existing files.
// If the configured logo SVG exists it replaces the text label; an unusable
// logo logs a warning and falls back to the label.
func Generate(c Config, logger zerolog.Logger) error {
	if err := os.MkdirAll(c.OutDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	svgData, err := os.ReadFile(c.LogoPath)
	if err != nil {
		svgData = nil
	}

	for _, size := range c.Sizes {
		var img *image.NRGBA
		if svgData != nil {
			img, err = c.RenderLogo(size, svgData)
			if err != nil {
				logger.Warn().Err(err).Str("logo", c.LogoPath).Msg("logo unusable, using text label")
				svgData = nil
			}
		}
		if img == nil {
			img, err = c.Render(size)
			if err != nil {
				return err
			}
		}

		path := filepath.Join(c.OutDir, fmt.Sprintf("icon%d.png", size))
		if err := writePNG(path, img); err != nil {
			return err
		}
		logger.Info().Str("path", path).Int("size", size).Msg("icon written")
	}

	logger.Info().Int("count", len(c.Sizes)).Msg("all icons created")
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
