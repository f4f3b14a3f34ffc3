// Package effects maintains the video effect catalog: a persisted JSON array
// of effect records sorted by identifier.
//
// Records come from materials.video_effects lists, at the top of a draft or
// inside nested material blocks. The identifier is the first non-empty of
// effect_id, resource_id and id; candidates without one are dropped. Missing
// descriptive fields default to "", except type, which defaults to
// "video_effect".
//
// The catalog only grows: an identifier already present, persisted or seen
// earlier in the same run, keeps its first record.
package effects
