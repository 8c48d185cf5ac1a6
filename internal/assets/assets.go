// Package assets bundles the static binary assets shipped with the
// generator.
package assets

import _ "embed"

// Faceplate is the placeholder station faceplate texture. It is a
// plain 64x64 uncompressed DDS that gets copied into every generated
// package as gfx/<name>_faceplate.dds; users replace it with real
// artwork after the fact.
//
//go:embed faceplate.dds
var Faceplate []byte
