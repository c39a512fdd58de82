// Package utils provides common conversion helpers: parsing user-typed numbers and turning
// loosely typed JSON scalars into canonical strings and booleans for filtering.
package utils
