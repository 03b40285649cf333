package visibility2d

// candidateCompare orders by angle, then by distance so that nearer
// collinear vertices are swept first, then by point order.
func candidateCompare(a, b candidate) int {
	if a.angle > b.angle {
		return 1
	}

	if a.angle < b.angle {
		return -1
	}

	if a.distance > b.distance {
		return 1
	}

	if a.distance < b.distance {
		return -1
	}

	return a.point.Compare(b.point)
}

func compareFloat(a, b float64) int {
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}
