package textparser

import (
	"fmt"
	"reflect"
	"strings"
)

// Tagged is the result of a Tag pattern: the tag name paired with
// the result of the tagged pattern
type Tagged struct {
	Name  string
	Value any
}

func (t Tagged) String() string {
	return fmt.Sprintf("(%s, %v)", t.Name, t.Value)
}

// Dict is the result of a RepeatedDict pattern.  It maps keys to the
// matches that produced them.  Keys iterate in first-insertion order
// and matches under the same key keep the order they were found in.
// Keys that can't be compared, like the slice a nested sequence
// produces, are grouped by their printed form.
type Dict struct {
	keys   []any
	values map[any][]any
}

// NewDict creates an empty Dict
func NewDict() *Dict {
	return &Dict{values: map[any][]any{}}
}

// Add appends `value` to the list under `key`
func (d *Dict) Add(key, value any) {
	k := dictKey(key)
	items, ok := d.values[k]
	if !ok {
		d.keys = append(d.keys, key)
	}
	d.values[k] = append(items, value)
}

// Get returns the matches stored under `key`
func (d *Dict) Get(key any) ([]any, bool) {
	items, ok := d.values[dictKey(key)]
	return items, ok
}

// Keys returns the keys in first-insertion order
func (d *Dict) Keys() []any {
	keys := make([]any, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns how many distinct keys the dict holds
func (d *Dict) Len() int { return len(d.keys) }

func (d *Dict) String() string {
	var s strings.Builder
	s.WriteString("{")
	for i, key := range d.keys {
		if i > 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "%v: %v", key, d.values[dictKey(key)])
	}
	s.WriteString("}")
	return s.String()
}

// printedKey stands in for keys that would panic as map keys
type printedKey string

func dictKey(key any) any {
	if key == nil || reflect.ValueOf(key).Comparable() {
		return key
	}
	return printedKey(fmt.Sprintf("%#v", key))
}
