// Package types defines the public data model of the cehive decoder: the
// typed value union produced for every registry value, the flat registry
// mapping, and the typed error categories every decode failure falls into.
package types
