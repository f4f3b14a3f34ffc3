package effects

import (
	"iter"

	"draftscan/internal/jsontree"
)

// DefaultType is assigned to records whose source omits type.
const DefaultType = "video_effect"

// Pattern locates video effect records inside a draft.
var Pattern = jsontree.Pattern{
	Within: "materials",
	Field:  "video_effects",
}

// idFields lists identifier fields in priority order.
var idFields = []string{"effect_id", "resource_id", "id"}

// Record is one catalog entry.
type Record struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Path         string `json:"path" yaml:"path"`
	CategoryID   string `json:"category_id" yaml:"category_id"`
	CategoryName string `json:"category_name" yaml:"category_name"`
	Type         string `json:"type" yaml:"type"`
}

// Normalize converts a raw video effect object into a Record. It reports
// false when no identifier resolves.
func Normalize(node *jsontree.Node) (Record, bool) {
	id := node.FirstField(idFields...)
	if id == "" {
		return Record{}, false
	}
	return Record{
		ID:           id,
		Name:         node.Field("name"),
		Path:         node.Field("path"),
		CategoryID:   node.Field("category_id"),
		CategoryName: node.Field("category_name"),
		Type:         node.FieldOr("type", DefaultType),
	}, true
}

// Records yields the normalized effect records of root in document order.
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
