package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"algo-readme/internal/domain/model"
)

// NoProblemsMessage is shown wherever there is nothing solved yet.
const NoProblemsMessage = "아직 풀은 문제가 없습니다"

const (
	svgNamespace = "http://www.w3.org/2000/svg"

	canvasWidth  = 400
	canvasHeight = 250
	emptyWidth   = 200
	emptyHeight  = 200

	radius  = 100.0
	centerX = 100.0
	centerY = 100.0

	labelRadiusRatio = 0.7
	labelMinShare    = 0.10
	largeArcShare    = 0.5

	backgroundFill = "#f0f0f0"

	legendY       = 220
	legendX       = 40
	legendSpacing = 80
	swatchSize    = 15
)

// Slice is one pie wedge. Angles are in radians, measured clockwise in SVG
// screen coordinates starting from the positive x axis.
type Slice struct {
	Tier     model.Tier
	Count    int
	Share    float64
	Start    float64
	Sweep    float64
	LargeArc bool
}

// End is the angle where the slice stops.
func (s Slice) End() float64 { return s.Start + s.Sweep }

// Labeled reports whether the slice is wide enough to carry a percentage label.
func (s Slice) Labeled() bool { return s.Share > labelMinShare }

// Label is the "count (pct%)" caption drawn inside the slice.
func (s Slice) Label() string {
	return fmt.Sprintf("%d (%.1f%%)", s.Count, s.Share*100)
}

// Slices computes one wedge per non-empty tier in canonical tier order.
// It returns nil when no problems were counted.
func Slices(counts model.TierCounts) []Slice {
	total := counts.Total()
	if total == 0 {
		return nil
	}

	var (
		slices []Slice
		angle  float64
	)
	for _, tier := range model.Tiers {
		count := counts[tier]
		if count <= 0 {
			continue
		}
		share := float64(count) / float64(total)
		sweep := share * 2 * math.Pi
		slices = append(slices, Slice{
			Tier:     tier,
			Count:    count,
			Share:    share,
			Start:    angle,
			Sweep:    sweep,
			LargeArc: share > largeArcShare,
		})
		angle += sweep
	}
	return slices
}

// Chart renders the tier distribution as a self-contained SVG document.
func Chart(counts model.TierCounts) (string, error) {
	slices := Slices(counts)
	if len(slices) == 0 {
		svg := element("svg",
			"width", itoa(emptyWidth), "height", itoa(emptyHeight), "xmlns", svgNamespace)
		svg.AppendChild(textElement(NoProblemsMessage, "x", "50", "y", "100"))
		return render(svg)
	}

	svg := element("svg",
		"width", itoa(canvasWidth), "height", itoa(canvasHeight), "xmlns", svgNamespace)
	svg.AppendChild(element("circle",
		"cx", num(centerX), "cy", num(centerY), "r", num(radius), "fill", backgroundFill))

	for _, s := range slices {
		svg.AppendChild(element("path", "d", slicePath(s), "fill", s.Tier.Color()))
		if !s.Labeled() {
			continue
		}
		mid := s.Start + s.Sweep/2
		x, y := point(radius*labelRadiusRatio, mid)
		svg.AppendChild(textElement(s.Label(),
			"x", num(x), "y", num(y), "text-anchor", "middle", "fill", "white"))
	}

	for _, s := range slices {
		x := legendX + s.Tier.Index()*legendSpacing
		svg.AppendChild(element("rect",
			"x", itoa(x), "y", itoa(legendY),
			"width", itoa(swatchSize), "height", itoa(swatchSize), "fill", s.Tier.Color()))
		svg.AppendChild(textElement(s.Tier.Caption(),
			"x", itoa(x+20), "y", itoa(legendY+12), "font-size", "12"))
	}

	return render(svg)
}

// slicePath draws center → arc start → arc end → center. A wedge covering
// the whole circle is split at its midpoint since an SVG arc whose endpoints
// coincide is not drawn.
func slicePath(s Slice) string {
	large := "0"
	if s.LargeArc {
		large = "1"
	}
	sx, sy := point(radius, s.Start)
	ex, ey := point(radius, s.End())

	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s L%s,%s ", num(centerX), num(centerY), num(sx), num(sy))
	if s.Share >= 1 {
		mx, my := point(radius, s.Start+s.Sweep/2)
		fmt.Fprintf(&b, "A%s,%s 0 0,1 %s,%s ", num(radius), num(radius), num(mx), num(my))
		large = "0"
	}
	fmt.Fprintf(&b, "A%s,%s 0 %s,1 %s,%s Z", num(radius), num(radius), large, num(ex), num(ey))
	return b.String()
}

func point(r, angle float64) (float64, float64) {
	return centerX + r*math.Cos(angle), centerY + r*math.Sin(angle)
}

func element(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textElement(text string, attrs ...string) *html.Node {
	n := element("text", attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", fmt.Errorf("render svg: %w", err)
	}
	return b.String(), nil
}

// num formats coordinates with fixed precision so output is byte-stable.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

func itoa(v int) string { return strconv.Itoa(v) }
