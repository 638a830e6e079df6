package geo

const epsilon = 1e-12

// Contains check point [lon lat] against the geometry, points on the boundary count as inside
func (g *Geometry) Contains(lon, lat float64) bool {
	if !g.IsArea() {
		return false
	}

	for _, rings := range g.Polygons() {
		if len(rings) == 0 {
			continue
		}

		inside, onBoundary := pointInRing(lon, lat, rings[0])
		if onBoundary {
			return true
		}
		if !inside {
			continue
		}

		inHole := false
		for _, hole := range rings[1:] {
			holeInside, holeBoundary := pointInRing(lon, lat, hole)
			if holeBoundary {
				return true
			}
			if holeInside {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// pointInRing ray casting on a single linear ring
func pointInRing(lon, lat float64, ring [][]float64) (inside, onBoundary bool) {
	n := len(ring)
	if n < 3 {
		return false, false
	}

	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		if onSegment(lon, lat, xi, yi, xj, yj) {
			return false, true
		}

		if (yi > lat) != (yj > lat) {
			intersect := (xj-xi)*(lat-yi)/(yj-yi) + xi
			if lon < intersect {
				inside = !inside
			}
		}
		j = i
	}
	return inside, false
}

func onSegment(px, py, ax, ay, bx, by float64) bool {
	cross := (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	if cross > epsilon || cross < -epsilon {
		return false
	}
	if px < min(ax, bx)-epsilon || px > max(ax, bx)+epsilon {
		return false
	}
	if py < min(ay, by)-epsilon || py > max(ay, by)+epsilon {
		return false
	}
	return true
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
