package types

import (
	commontypes "github.com/bytearena/visgraph/common/types"
)

type WatcherMap struct {
	*commontypes.SyncMap
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		commontypes.NewSyncMap(),
	}
}

func (wmap *WatcherMap) Get(id string) *Watcher {
	if res, ok := (wmap.GetGeneric(id)).(*Watcher); ok {
		return res
	}

	return nil
}

type VizGraphMap struct {
	*commontypes.SyncMap
}

func NewVizGraphMap() *VizGraphMap {
	return &VizGraphMap{
		commontypes.NewSyncMap(),
	}
}

func (gmap *VizGraphMap) Get(id string) *VizGraph {
	if res, ok := (gmap.GetGeneric(id)).(*VizGraph); ok {
		return res
	}

	return nil
}

func (gmap *VizGraphMap) Add(graph *VizGraph) {
	gmap.Set(graph.GetId(), graph)
}

// All returns the graphs, oldest first.
func (gmap *VizGraphMap) All() []*VizGraph {
	res := make([]*VizGraph, 0)
	for _, item := range gmap.ToArrayGeneric() {
		if graph, ok := item.(*VizGraph); ok {
			res = append(res, graph)
		}
	}

	sortByCreation(res)
	return res
}
