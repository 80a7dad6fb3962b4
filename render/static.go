// Package render draws the static map views of the dataset as PNG
// files.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/palmwatch/millatlas/geojson"
	"github.com/palmwatch/millatlas/service"
	"github.com/palmwatch/millatlas/uml"
)

// Fixed colors matching the original maps: all mills red, certified
// red over not-certified blue on the split view.
var (
	colorMills        = color.RGBA{R: 255, A: 255}
	colorCertified    = color.RGBA{R: 255, A: 255}
	colorNotCertified = color.RGBA{B: 255, A: 255}
	colorBoundary     = color.RGBA{A: 255}
	colorLand         = color.RGBA{R: 144, G: 238, B: 144, A: 255}
)

// Mills draws every mill over the optional world-boundary layer and
// saves the figure to path. world may be nil.
func Mills(ds *uml.Dataset, world *geojson.FeatureCollection, path string) error {
	p := plot.New()
	p.Title.Text = "Palm Oil Mills"
	p.Title.TextStyle.Font.Size = vg.Points(24)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.BackgroundColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}

	if err := addWorld(p, world); err != nil {
		return err
	}
	if err := addPoints(p, ds.Records(), colorMills); err != nil {
		return err
	}

	if err := p.Save(24*vg.Inch, 12*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Certification draws the certified and not-certified subsets in
// distinct colors over the optional world-boundary layer and saves
// the figure to path. Records matching neither status are not drawn.
func Certification(part service.Partition, world *geojson.FeatureCollection, path string) error {
	p := plot.New()
	p.Title.Text = "Certified(Red) and Not Certified(Blue) Palm Oil Mills"
	p.Title.TextStyle.Font.Size = vg.Points(24)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.BackgroundColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}

	if err := addWorld(p, world); err != nil {
		return err
	}
	// Not certified below certified, same stacking as the original.
	if err := addPoints(p, part.NotCertified, colorNotCertified); err != nil {
		return err
	}
	if err := addPoints(p, part.Certified, colorCertified); err != nil {
		return err
	}

	if err := p.Save(24*vg.Inch, 12*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func addPoints(p *plot.Plot, records []uml.Record, c color.Color) error {
	if len(records) == 0 {
		return nil
	}

	points := make(plotter.XYs, len(records))
	for i, rec := range records {
		points[i].X = rec.Longitude
		points[i].Y = rec.Latitude
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("failed to create scatter: %w", err)
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(2)
	p.Add(scatter)
	return nil
}

// addWorld draws the boundary rings of the base layer as filled-less
// black lines, the low-res world map under the points.
func addWorld(p *plot.Plot, world *geojson.FeatureCollection) error {
	if world == nil {
		p.Add(plotter.NewGrid())
		return nil
	}

	for _, ring := range world.Rings() {
		xys := make(plotter.XYs, len(ring))
		for i, coord := range ring {
			if len(coord) < 2 {
				continue
			}
			xys[i].X = coord[0]
			xys[i].Y = coord[1]
		}

		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return fmt.Errorf("failed to create boundary polygon: %w", err)
		}
		poly.LineStyle.Color = colorBoundary
		poly.LineStyle.Width = vg.Points(0.5)
		poly.Color = colorLand
		p.Add(poly)
	}
	return nil
}
