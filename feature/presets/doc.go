// Package presets stores named operator goal presets per user.
//
// Presets form a dense list: a new preset takes index len(list) and deleting
// one shifts every later preset down. The payload is opaque JSON.
package presets
