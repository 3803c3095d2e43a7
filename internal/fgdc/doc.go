// Package fgdc fills an FGDC metadata XML template from a YAML
// configuration.
//
// A Record owns a private copy of the template. Each Update method
// overwrites one group of fields at fixed template paths; repeated blocks
// (originators, keywords, processing steps, attachments) are rebuilt as
// named groups. Apply runs every update on a working copy and keeps the
// result only when all of them succeed.
package fgdc
