package memory

import (
	"sort"

	"github.com/yigit/airport/internal/app/models"
)

type row[T any] struct {
	seq   int64
	value T
}

// table keeps rows of one entity in insertion order.
type table[T any] struct {
	seq  int64
	rows map[models.ID]row[T]
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[models.ID]row[T])}
}

func (t *table[T]) insert(id models.ID, value T) {
	t.seq++
	t.rows[id] = row[T]{seq: t.seq, value: value}
}

func (t *table[T]) has(id models.ID) bool {
	_, ok := t.rows[id]
	return ok
}

// get returns a copy of the row so callers cannot mutate stored state
func (t *table[T]) get(id models.ID) (*T, bool) {
	r, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	v := r.value
	return &v, true
}

// find returns copies of the matching rows in insertion order, never nil
func (t *table[T]) find(keep func(*T) bool) []*T {
	matched := make([]row[T], 0, len(t.rows))
	for _, r := range t.rows {
		if keep == nil || keep(&r.value) {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	out := make([]*T, 0, len(matched))
	for _, r := range matched {
		v := r.value
		out = append(out, &v)
	}
	return out
}

func (t *table[T]) first(keep func(*T) bool) (*T, bool) {
	found := t.find(keep)
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}

// update applies fn to the row with the given id. Missing rows are ignored.
func (t *table[T]) update(id models.ID, fn func(*T)) {
	r, ok := t.rows[id]
	if !ok {
		return
	}
	fn(&r.value)
	t.rows[id] = r
}

// updateWhere applies fn to every matching row
func (t *table[T]) updateWhere(keep func(*T) bool, fn func(*T)) {
	for id, r := range t.rows {
		if keep(&r.value) {
			fn(&r.value)
			t.rows[id] = r
		}
	}
}

func (t *table[T]) delete(id models.ID) {
	delete(t.rows, id)
}

func (t *table[T]) deleteWhere(keep func(*T) bool) {
	for id, r := range t.rows {
		if keep(&r.value) {
			delete(t.rows, id)
		}
	}
}
