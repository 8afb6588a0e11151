package components

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
)

// SVG colors for the exported ring
const (
	svgTrackColor = "#374151"
	svgArcColor   = "#F97316"
	svgLabelColor = "#F9FAFB"
)

type svgCircle struct {
	CX               string `xml:"cx,attr"`
	CY               string `xml:"cy,attr"`
	R                string `xml:"r,attr"`
	Fill             string `xml:"fill,attr"`
	Stroke           string `xml:"stroke,attr"`
	StrokeWidth      string `xml:"stroke-width,attr"`
	StrokeDashArray  string `xml:"stroke-dasharray,attr,omitempty"`
	StrokeDashOffset string `xml:"stroke-dashoffset,attr,omitempty"`
	StrokeLineCap    string `xml:"stroke-linecap,attr,omitempty"`
}

type svgGroup struct {
	Transform string      `xml:"transform,attr"`
	Circles   []svgCircle `xml:"circle"`
}

type svgText struct {
	X                string `xml:"x,attr"`
	Y                string `xml:"y,attr"`
	TextAnchor       string `xml:"text-anchor,attr"`
	DominantBaseline string `xml:"dominant-baseline,attr"`
	FontSize         string `xml:"font-size,attr"`
	FontWeight       string `xml:"font-weight,attr"`
	Fill             string `xml:"fill,attr"`
	Value            string `xml:",chardata"`
}

type svgDocument struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Group   svgGroup `xml:"g"`
	Label   svgText  `xml:"text"`
}

// SVG renders the ring as a standalone SVG document.
// The group is rotated -90° about the center so the arc starts at
// 12 o'clock; the label sits outside the rotation.
func (g RingGeometry) SVG() string {
	c := svgNumber(g.Center())
	r := svgNumber(g.Radius)
	stroke := svgNumber(g.StrokeWidth)

	doc := svgDocument{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   svgNumber(g.Size),
		Height:  svgNumber(g.Size),
		ViewBox: fmt.Sprintf("0 0 %s %s", svgNumber(g.Size), svgNumber(g.Size)),
		Group: svgGroup{
			Transform: fmt.Sprintf("rotate(-90 %s %s)", c, c),
			Circles: []svgCircle{
				{CX: c, CY: c, R: r, Fill: "none", Stroke: svgTrackColor, StrokeWidth: stroke},
				{
					CX: c, CY: c, R: r, Fill: "none", Stroke: svgArcColor, StrokeWidth: stroke,
					StrokeDashArray:  svgNumber(g.Circumference),
					StrokeDashOffset: svgNumber(g.Offset),
					StrokeLineCap:    "round",
				},
			},
		},
		Label: svgText{
			X: c, Y: c,
			TextAnchor:       "middle",
			DominantBaseline: "central",
			FontSize:         svgNumber(math.Round(g.Size / 5)),
			FontWeight:       "bold",
			Fill:             svgLabelColor,
			Value:            g.Label(),
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		// Only string fields; marshalling cannot fail
		return ""
	}
	return string(out) + "\n"
}

// svgNumber formats v with at most three decimals and no trailing zeros
func svgNumber(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
