// Package jsontree decodes JSON documents into an order-preserving tree and
// walks that tree looking for record lists.
//
// A Node is one of three variants: object, array or scalar. Objects keep
// their members in document order, so a walk over the same document always
// yields candidates in the same order. Scalars keep their literal form;
// numbers stay json.Number so identifiers such as 7001234 render exactly as
// the source wrote them.
//
// Walk locates objects described by a Pattern (a named field holding a list,
// optionally nested inside a named parent and optionally descending through
// further list fields) and yields the object elements it finds. The walk is
// depth-first pre-order and never stops at a match: the matched node's other
// members are still visited, so overlapping matches are possible and must be
// resolved by the caller.
package jsontree
