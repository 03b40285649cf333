package visibility2d

import (
	"sort"

	"github.com/bytearena/visgraph/common/geometry"
	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("visibility2d: segment is not in the status")
	ErrAlreadyPresent = errors.New("visibility2d: segment is already in the status")
)

// Status holds the obstacle segments crossing the sweep ray, nearest first.
// Every comparison reads the ray in place at that moment; moving the ray
// keeps the order valid as long as members do not cross each other.
//
// A Status belongs to one sweep and is not safe for concurrent use.
type Status struct {
	ray     geometry.Ray
	members []geometry.Segment
}

func NewStatus(ray geometry.Ray) *Status {
	return &Status{
		ray:     ray,
		members: make([]geometry.Segment, 0),
	}
}

func (s *Status) Ray() geometry.Ray {
	return s.ray
}

// SetRay moves the sweep ray. Members are not re-sorted.
func (s *Status) SetRay(ray geometry.Ray) {
	s.ray = ray
}

func (s *Status) Len() int {
	return len(s.members)
}

// Members returns the segments nearest first.
func (s *Status) Members() []geometry.Segment {
	res := make([]geometry.Segment, len(s.members))
	copy(res, s.members)
	return res
}

func (s *Status) Contains(seg geometry.Segment) bool {
	return s.indexOf(seg.Canonical()) >= 0
}

func (s *Status) indexOf(seg geometry.Segment) int {
	for i, member := range s.members {
		if member == seg {
			return i
		}
	}

	return -1
}

// Insert adds seg at its place along the current ray.
func (s *Status) Insert(seg geometry.Segment) error {
	seg = seg.Canonical()

	if seg.IsDegenerate() {
		return errors.Wrapf(geometry.ErrDegenerate, "inserting %v", seg)
	}

	if seg.Has(s.ray.Origin) || passesThrough(seg, s.ray.Origin) {
		return errors.Wrapf(geometry.ErrDegenerate, "inserting %v touching the sweep origin %v", seg, s.ray.Origin)
	}

	if s.indexOf(seg) >= 0 {
		return errors.Wrapf(ErrAlreadyPresent, "inserting %v", seg)
	}

	e := makeSegmentEntry(seg)
	index := sort.Search(len(s.members), func(i int) bool {
		return s.compare(e, makeSegmentEntry(s.members[i])) < 0
	})

	s.members = append(s.members, geometry.Segment{})
	copy(s.members[index+1:], s.members[index:])
	s.members[index] = seg

	return nil
}

// Remove takes seg out of the status.
func (s *Status) Remove(seg geometry.Segment) error {
	seg = seg.Canonical()

	index := s.indexOf(seg)
	if index < 0 {
		return errors.Wrapf(ErrNotFound, "removing %v", seg)
	}

	copy(s.members[index:], s.members[index+1:])
	s.members[len(s.members)-1] = geometry.Segment{}
	s.members = s.members[:len(s.members)-1]

	return nil
}

// Rank returns how many members lie before target along the current ray. A
// member meeting the ray exactly at target counts as before it.
func (s *Status) Rank(target geometry.Point) int {
	e := makePointEntry(target)
	return sort.Search(len(s.members), func(i int) bool {
		return s.compare(makeSegmentEntry(s.members[i]), e) > 0
	})
}

// NothingCloser reports whether target is visible from the ray origin: no
// member meets the ray before target or at target.
func (s *Status) NothingCloser(target geometry.Point) bool {
	return s.Rank(target) == 0
}
