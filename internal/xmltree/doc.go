// Package xmltree is a small ordered XML element tree.
//
// Elements keep children and attributes in document order. Tag names are
// local names; namespace prefixes and declarations are not preserved.
// Comments and processing instructions are dropped on decode.
//
// Repeated sibling groups are edited by tag name (ReplaceGroup,
// InsertAfterLast) rather than by integer position, so groups interleaved
// in one parent keep their relative order.
package xmltree
