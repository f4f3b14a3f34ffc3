package alias

import (
	"iter"

	"draftscan/internal/jsontree"
)

// Pattern locates animation records inside a draft.
var Pattern = jsontree.Pattern{
	Field:   "material_animations",
	Descend: []string{"animations"},
}

// idFields lists identifier fields in priority order.
var idFields = []string{"id", "resource_id", "third_resource_id"}

// Record is a normalized alias candidate.
type Record struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Normalize converts a raw animation object into a Record. It reports false
// when the identifier or the name is empty.
func Normalize(node *jsontree.Node) (Record, bool) {
	id := node.FirstField(idFields...)
	if id == "" {
		return Record{}, false
	}
	name := node.Field("name")
	if name == "" {
		return Record{}, false
	}
	return Record{ID: id, Name: name}, true
}

// Records yields the normalized alias records of root in document order.
func Records(root *jsontree.Node) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for node := range jsontree.Walk(root, Pattern) {
			record, ok := Normalize(node)
			if !ok {
				continue
			}
			if !yield(record) {
				return
			}
		}
	}
}
