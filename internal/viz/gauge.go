package viz

import (
	"fmt"
	"math"
	"strings"
)

const (
	// GaugeScale converts display EMF into gauge units. It only affects
	// what is drawn.
	GaugeScale = 10.0
	GaugeLimit = 100.0
	// MaxDeflection is the needle angle in degrees at full scale.
	MaxDeflection = 80.0
	gaugeTicks    = 11
)

func GaugeReading(emfDisplay float64) float64 { return emfDisplay * GaugeScale }

// NeedleAngle maps a reading to a needle angle in degrees, clockwise from
// vertical. Readings beyond the limit pin the needle.
func NeedleAngle(reading float64) float64 {
	if math.IsNaN(reading) {
		return 0
	}
	r := math.Max(-GaugeLimit, math.Min(GaugeLimit, reading))
	return r / GaugeLimit * MaxDeflection
}

// RenderGauge draws a galvanometer dial cols cells wide and rows tall with
// the reading underneath.
func RenderGauge(emfDisplay float64, cols, rows int, s Styles) string {
	reading := GaugeReading(emfDisplay)
	c := dial(NeedleAngle(reading), cols, rows)

	var b strings.Builder
	for _, row := range c.Rows() {
		b.WriteString(s.EMF.Render(row))
		b.WriteByte('\n')
	}
	label := fmt.Sprintf("%+7.2f", reading)
	pad := max(0, (cols-len(label))/2)
	b.WriteString(strings.Repeat(" ", pad) + s.Value.Render(label))
	return b.String()
}

func dial(angle float64, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	cx, cy := c.DotsX()/2, c.DotsY()-1
	radius := math.Min(float64(cx-1), float64(cy-1))
	if radius < 2 {
		return c
	}

	sweep := MaxDeflection * math.Pi / 180
	c.Arc(cx, cy, radius, radius, math.Pi/2-sweep, math.Pi/2+sweep)

	for i := 0; i < gaugeTicks; i++ {
		deg := -MaxDeflection + float64(i)*2*MaxDeflection/float64(gaugeTicks-1)
		a := math.Pi/2 - deg*math.Pi/180
		inner := radius * 0.85
		c.Line(
			cx+int(math.Round(inner*math.Cos(a))), cy-int(math.Round(inner*math.Sin(a))),
			cx+int(math.Round(radius*math.Cos(a))), cy-int(math.Round(radius*math.Sin(a))),
		)
	}

	a := math.Pi/2 - angle*math.Pi/180
	tip := radius * 0.8
	c.Line(cx, cy, cx+int(math.Round(tip*math.Cos(a))), cy-int(math.Round(tip*math.Sin(a))))
	c.FillRect(cx-1, cy-1, cx+1, cy)
	return c
}
