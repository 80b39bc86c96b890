package card

import "math"

// ImageGeometry is the physical size of the image sub-view.
type ImageGeometry struct {
	Width  int
	Height int
	Mode   ScaleMode
}

// Density is a Display with a fixed density factor.
type Density float64

// DPToPixels converts device-independent units to pixels, rounding to nearest.
func (d Density) DPToPixels(dp float64) int {
	return int(math.Round(dp * float64(d)))
}

// Density returns the factor itself.
func (d Density) Density() float64 {
	return float64(d)
}

// SetImageDimensions sizes the image with center-crop scaling.
func (c *Card) SetImageDimensions(width, height int) {
	c.SetImageDimensionsWithMode(width, height, ScaleCenterCrop)
}

// SetImageDimensionsWithMode converts the logical size to pixels, applies it to
// the image, stretches the progress bar to the same width and moves the
// banner to the trailing edge.
func (c *Card) SetImageDimensionsWithMode(width, height int, mode ScaleMode) {
	c.geometry = ImageGeometry{
		Width:  int(math.Round(float64(width) * c.density)),
		Height: int(math.Round(float64(height) * c.density)),
		Mode:   mode,
	}
	c.image.SetSize(c.geometry.Width, c.geometry.Height, mode)

	c.progress.Width = c.geometry.Width
	if c.banner != nil {
		c.banner.X = c.geometry.Width - c.bannerSize
	}
}

// SetBanner shows the corner banner, creating it on first use.
func (c *Card) SetBanner(resource string) {
	if c.banner == nil {
		c.banner = &Banner{
			Size: c.bannerSize,
			X:    c.geometry.Width - c.bannerSize,
		}
	}
	c.banner.Resource = resource
	c.banner.Visible = true
}

// ClearBanner hides the banner if one exists.
func (c *Card) ClearBanner() {
	if c.banner != nil {
		c.banner.Visible = false
	}
}
