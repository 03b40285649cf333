package types

import (
	"sort"
	"sync"
)

type SyncMap struct {
	data map[string]interface{}
	lock *sync.RWMutex
}

func NewSyncMap() *SyncMap {
	return &SyncMap{
		data: make(map[string]interface{}, 0),
		lock: &sync.RWMutex{},
	}
}

func (wmap *SyncMap) GetGeneric(id string) interface{} {
	var res interface{}
	present := false

	wmap.lock.RLock()
	if res, present = wmap.data[id]; !present {
		res = nil
	}
	wmap.lock.RUnlock()

	return res
}

func (wmap *SyncMap) Set(id string, item interface{}) error {
	wmap.lock.Lock()
	wmap.data[id] = item
	wmap.lock.Unlock()

	return nil
}

func (wmap *SyncMap) Remove(id string) {
	wmap.lock.Lock()
	delete(wmap.data, id)
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Size() int {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return len(wmap.data)
}

// Keys returns the ids in lexical order.
func (wmap *SyncMap) Keys() []string {
	wmap.lock.RLock()
	res := make([]string, 0, len(wmap.data))
	for k := range wmap.data {
		res = append(res, k)
	}
	wmap.lock.RUnlock()

	sort.Strings(res)
	return res
}

// ToArrayGeneric returns the items ordered by id.
func (wmap *SyncMap) ToArrayGeneric() []interface{} {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	keys := make([]string, 0, len(wmap.data))
	for k := range wmap.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		res = append(res, wmap.data[k])
	}

	return res
}
