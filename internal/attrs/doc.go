// Package attrs holds attribute description tables: for each dotted attribute
// path, the value type, whether it is required, its units and string style.
//
// Tables are read-only during transforms. The XML renderer consults them to
// attach units and type attributes, the coercer uses declared types to turn
// parsed text back into numbers and booleans, and Validate checks a metadata
// document against the table.
//
// # YAML format
//
//	station.channel.sample_rate:
//	  type: float
//	  required: true
//	  units: samples per second
//	  style: number
//	station.id:
//	  type: str
//	  required: true
//
// Names are normalized to lower snake case ("sampleRate" -> "sample_rate",
// "/" -> "."); types to integer, float, string or boolean; units "none",
// "empty" and "" mean no units.
package attrs
