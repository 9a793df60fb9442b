// Package maps embeds the shipped campus and building maps.
package maps

import "embed"

// FS holds every shipped map document, named "<id>.json".
//
//go:embed *.json
var FS embed.FS

// Campus is the id of the outdoor starting map.
const Campus = "campus"
