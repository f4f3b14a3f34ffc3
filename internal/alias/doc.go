// Package alias maintains the animation alias map: a persisted JSON object
// mapping animation identifiers to display names.
//
// Records come from material_animations[].animations[] lists anywhere in a
// draft. The identifier is the first non-empty of id, resource_id and
// third_resource_id; a candidate without an identifier or a name is dropped.
//
// The map only grows. Merge inserts identifiers that are not yet present and
// leaves existing entries untouched, whether they were persisted by an
// earlier run or inserted earlier in the same run.
package alias
