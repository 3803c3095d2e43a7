// Package server exposes the mapping and XML transforms over HTTP.
//
// Request bodies are JSON by default; application/yaml and
// application/msgpack are accepted as well. Responses are JSON unless the
// client asks for msgpack in its Accept header. Documents are held in key
// order end to end.
package server
