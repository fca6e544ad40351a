// Package storage provides JSON file persistence for the medal widget data.
//
// The output directory holds medals.json, rewritten whole on every run. The mapping
// directory holds name_to_noc.json and noc_to_iso.json, produced by the mappings
// command and read back at the start of each run.
package storage
