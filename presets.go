package gamepaint

// Scene presets built from the low-level drawing primitives. Each draws
// at (x, y) with a uniform scale factor; the footprint at scale 1 is
// roughly 150x70 for the car, 140x120 for the house and 90x125 for the
// tree.

// DrawCar draws a side-view car. bodyColor tints the chassis and roof,
// windowColor the two windows.
func DrawCar(c *Canvas, x, y, scale float64, bodyColor, windowColor Color) {
	s := func(v float64) float64 { return float64(int(v * scale)) }
	outline := Black
	glass := RGBA(50, 50, 50, 255)

	// Chassis.
	c.Polygon([]Point{
		Pt(x+s(10), y+s(50)),
		Pt(x+s(10), y+s(35)),
		Pt(x+s(140), y+s(35)),
		Pt(x+s(140), y+s(50)),
	}, &bodyColor, &outline, 2)

	// Roof.
	c.Polygon([]Point{
		Pt(x+s(30), y+s(35)),
		Pt(x+s(40), y+s(15)),
		Pt(x+s(100), y+s(15)),
		Pt(x+s(110), y+s(35)),
	}, &bodyColor, &outline, 2)

	// Windows.
	c.Polygon([]Point{
		Pt(x+s(42), y+s(33)),
		Pt(x+s(48), y+s(18)),
		Pt(x+s(68), y+s(18)),
		Pt(x+s(68), y+s(33)),
	}, &windowColor, &glass, 1)
	c.Polygon([]Point{
		Pt(x+s(72), y+s(33)),
		Pt(x+s(72), y+s(18)),
		Pt(x+s(95), y+s(18)),
		Pt(x+s(102), y+s(33)),
	}, &windowColor, &glass, 1)

	// Lights.
	head := RGBA(255, 255, 150, 255)
	headRim := RGBA(200, 180, 50, 255)
	c.Ellipse(x+s(130), y+s(38), s(12), s(8), &head, &headRim, 1)
	tail := RGBA(255, 50, 50, 255)
	tailRim := RGBA(150, 30, 30, 255)
	c.Ellipse(x+s(8), y+s(38), s(10), s(8), &tail, &tailRim, 1)

	// Wheels with hubs.
	wheel := RGBA(40, 40, 40, 255)
	tire := RGBA(20, 20, 20, 255)
	hub := RGBA(180, 180, 180, 255)
	c.Ellipse(x+s(25), y+s(42), s(24), s(24), &wheel, &tire, 2)
	c.Ellipse(x+s(31), y+s(48), s(12), s(12), &hub, nil, 0)
	c.Ellipse(x+s(100), y+s(42), s(24), s(24), &wheel, &tire, 2)
	c.Ellipse(x+s(106), y+s(48), s(12), s(12), &hub, nil, 0)
}

// DrawHouse draws a front-view house with a door, two windows and a
// chimney.
func DrawHouse(c *Canvas, x, y, scale float64, wallColor, roofColor Color) {
	s := func(v float64) float64 { return float64(int(v * scale)) }

	wallTrim := RGBA(100, 80, 50, 255)
	c.Rect(x+s(20), y+s(50), s(100), s(70), &wallColor, &wallTrim, 2)

	roofTrim := RGBA(100, 40, 20, 255)
	c.Polygon([]Point{
		Pt(x+s(10), y+s(50)),
		Pt(x+s(70), y+s(10)),
		Pt(x+s(130), y+s(50)),
	}, &roofColor, &roofTrim, 2)

	door := RGBA(139, 90, 43, 255)
	doorTrim := RGBA(90, 60, 30, 255)
	c.Rect(x+s(55), y+s(80), s(30), s(40), &door, &doorTrim, 2)
	c.Dot(x+s(80), y+s(100), RGBA(255, 215, 0, 255), int(s(4)))

	window := RGBA(150, 200, 255, 255)
	c.Rect(x+s(28), y+s(60), s(20), s(18), &window, &wallTrim, 2)
	c.Rect(x+s(92), y+s(60), s(20), s(18), &window, &wallTrim, 2)

	chimney := RGBA(150, 80, 50, 255)
	chimneyTrim := RGBA(100, 50, 30, 255)
	c.Rect(x+s(95), y+s(20), s(15), s(30), &chimney, &chimneyTrim, 2)
}

// DrawTree draws a pine tree: a trunk under three stacked triangle
// layers of foliage.
func DrawTree(c *Canvas, x, y, scale float64, trunkColor, leafColor Color) {
	s := func(v float64) float64 { return float64(int(v * scale)) }

	trunkTrim := RGBA(100, 60, 30, 255)
	c.Rect(x+s(35), y+s(70), s(20), s(50), &trunkColor, &trunkTrim, 2)

	leafTrim := RGBA(30, 120, 30, 255)
	layers := [][3]Point{
		{Pt(x+s(5), y+s(75)), Pt(x+s(45), y+s(40)), Pt(x+s(85), y+s(75))},
		{Pt(x+s(12), y+s(55)), Pt(x+s(45), y+s(22)), Pt(x+s(78), y+s(55))},
		{Pt(x+s(20), y+s(35)), Pt(x+s(45), y+s(5)), Pt(x+s(70), y+s(35))},
	}
	for _, layer := range layers {
		c.Polygon(layer[:], &leafColor, &leafTrim, 2)
	}
}
