// Package metadict provides the ordered metadata mapping used throughout mth5meta
// and the flatten/structure transforms between nested and dot-joined records.
//
// A nested record groups attributes by level:
//
//	station:
//	  channel:
//	    sample_rate: 100
//
// and its flat form joins every path with a separator:
//
//	station.channel.sample_rate: 100
//
// # Key capabilities
//
//   - Map: insertion-ordered mapping with scalar, branch (*Map) and sequence values
//   - Path: structured key path, joined to a string only at the boundary
//   - Flatten / Structure: inverse transforms with configurable separator
//   - Walk: depth-first traversal with structured paths
//   - JSON, YAML and msgpack codecs that keep key order
//
// # Conflicts
//
// Structure rejects a flat record in which one key is a strict prefix of another
// ("a" and "a.b"); the segment cannot be both a leaf and a branch. Keys that
// already contain the separator pass through Flatten unchanged unless
// WithStrictKeys is given, in which case they are rejected.
package metadict
