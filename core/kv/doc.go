// Package kv provides the local persistent key-value storage the depot mirrors its state into.
//
// Three drivers exist: file (one lz4-compressed JSON file per key, atomic replace), redis and
// memory. GetJSON and SetJSON give the get-with-default / set contract used by the depot store.
package kv
