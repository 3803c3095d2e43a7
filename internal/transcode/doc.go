// Package transcode converts nested metadata mappings to XML element trees
// and back.
//
// Render emits one element per key in mapping order. Sequences become
// repeated <i> children of the attribute element. When an attribute table
// is given, elements whose dotted path (root key included) carries units or
// a non-string type are annotated with "units" and "type" attributes.
//
// Parse is the inverse for values: attributes are ignored, repeated tags
// group into sequences and keys come back sorted. Leaves come back as
// strings; Coerce restores declared types from an attribute table.
package transcode
