package visibility2d

import (
	"github.com/bytearena/visgraph/common/geometry"
)

type entryKind int

const (
	pointEntry entryKind = iota
	segmentEntry
)

// entry is an operand of the status comparator: either the swept point or an
// obstacle segment.
type entry struct {
	kind    entryKind
	point   geometry.Point
	segment geometry.Segment
}

func makePointEntry(p geometry.Point) entry {
	return entry{kind: pointEntry, point: p}
}

func makeSegmentEntry(s geometry.Segment) entry {
	return entry{kind: segmentEntry, segment: s}
}

// candidate is a vertex waiting to be swept, keyed by its polar coordinates
// around the sweep origin.
type candidate struct {
	point    geometry.Point
	angle    float64
	distance float64
}

type byAngle []candidate

func (coll byAngle) Len() int      { return len(coll) }
func (coll byAngle) Swap(i, j int) { coll[i], coll[j] = coll[j], coll[i] }
func (coll byAngle) Less(i, j int) bool {
	return candidateCompare(coll[i], coll[j]) < 0
}
