package render

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/bioreact/rxnlayout/pkg/model"
	"github.com/bioreact/rxnlayout/pkg/rlayout"
)

// Options configures SVG rendering of a computed Layout.
type Options struct {
	Margin          int    // extra canvas margin around the layout's bounds
	BackgroundColor string // canvas background fill
}

// DefaultOptions returns sensible default rendering options.
func DefaultOptions() Options {
	return Options{Margin: 40, BackgroundColor: "white"}
}

// Export draws layout to an SVG document and returns its bytes.
func Export(layout *rlayout.Layout, opts Options) ([]byte, error) {
	if layout == nil {
		return nil, fmt.Errorf("layout cannot be nil")
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.BackgroundColor == "" {
		opts.BackgroundColor = "white"
	}

	width := int(layout.Bounds.MaxX()) + 2*opts.Margin
	height := int(layout.Bounds.MaxY()) + 2*opts.Margin
	dx, dy := float64(opts.Margin), float64(opts.Margin)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", opts.BackgroundColor))

	drawCompartments(canvas, layout, dx, dy)
	drawConnectors(canvas, layout, dx, dy)
	drawReaction(canvas, layout, dx, dy)
	drawEntities(canvas, layout, dx, dy)

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile draws layout to SVG and writes it to path.
func SaveToFile(layout *rlayout.Layout, path string, opts Options) error {
	data, err := Export(layout, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func drawCompartments(canvas *svg.SVG, layout *rlayout.Layout, dx, dy float64) {
	compartments := append([]*model.Compartment(nil), layout.Compartments...)
	sort.Slice(compartments, func(i, j int) bool { return compartments[i].Accession < compartments[j].Accession })

	for _, c := range compartments {
		x, y := int(c.Position.X+dx), int(c.Position.Y+dy)
		w, h := int(c.Position.W), int(c.Position.H)
		canvas.Rect(x, y, w, h, "fill:none;stroke:#888888;stroke-dasharray:4,3")
		canvas.Text(int(c.LabelPosition.X+dx), int(c.LabelPosition.Y+dy), c.Name, "font-size:11px;fill:#555555")
	}
}

func drawReaction(canvas *svg.SVG, layout *rlayout.Layout, dx, dy float64) {
	r := layout.Reaction
	if r == nil {
		return
	}
	x, y := int(r.Position.X+dx), int(r.Position.Y+dy)
	w, h := int(r.Position.W), int(r.Position.H)
	style := reactionStyle(r.Shape)
	canvas.Rect(x, y, w, h, style)
	for _, seg := range r.Backbone {
		canvas.Line(int(seg.From.X+dx), int(seg.From.Y+dy), int(seg.To.X+dx), int(seg.To.Y+dy), "stroke:black;stroke-width:2")
	}
}

func reactionStyle(shape model.ShapeClass) string {
	switch shape {
	case model.ShapeOmitted:
		return "fill:white;stroke:black;stroke-dasharray:3,2"
	case model.ShapeUncertain:
		return "fill:white;stroke:black;stroke-dasharray:6,2"
	default:
		return "fill:black;stroke:black"
	}
}

func drawEntities(canvas *svg.SVG, layout *rlayout.Layout, dx, dy float64) {
	entities := append([]*model.Entity(nil), layout.Entities...)
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })

	for _, e := range entities {
		x, y := int(e.Position.X+dx), int(e.Position.Y+dy)
		w, h := int(e.Position.W), int(e.Position.H)
		canvas.Roundrect(x, y, w, h, 4, 4, entityStyle(e))
		canvas.Text(x+w/2, y+h/2, e.Name, "font-size:10px;text-anchor:middle;dominant-baseline:middle")
	}
}

func entityStyle(e *model.Entity) string {
	fill := "#d9e8f5"
	if e.Flags.Drug || e.Flags.Disease {
		fill = "#f5d9d9"
	}
	stroke := "black"
	if e.Flags.Dashed {
		return fmt.Sprintf("fill:%s;stroke:%s;stroke-dasharray:4,2", fill, stroke)
	}
	return fmt.Sprintf("fill:%s;stroke:%s", fill, stroke)
}

func drawConnectors(canvas *svg.SVG, layout *rlayout.Layout, dx, dy float64) {
	entities := append([]*model.Entity(nil), layout.Entities...)
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })

	for _, e := range entities {
		if e.Connector == nil {
			continue
		}
		for _, seg := range e.Connector.Segments {
			canvas.Line(int(seg.From.X+dx), int(seg.From.Y+dy), int(seg.To.X+dx), int(seg.To.Y+dy), "stroke:#333333;stroke-width:1.5")
		}
		if b := e.Connector.Stoichiometry; b != nil {
			x, y := int(b.Position.X+dx), int(b.Position.Y+dy)
			canvas.Rect(x, y, int(b.Position.W), int(b.Position.H), "fill:white;stroke:black")
			canvas.Text(x+int(b.Position.W)/2, y+int(b.Position.H)/2, fmt.Sprintf("%d", b.Count), "font-size:9px;text-anchor:middle;dominant-baseline:middle")
		}
	}
}
