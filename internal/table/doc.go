// Package table extracts a single statistics table, identified by its id
// attribute, from a Basketball-Reference HTML page.
//
// Basketball-Reference pages are hostile to naive extraction: tables are
// often shipped inside HTML comments, long tables repeat their header row
// periodically inside the body, and divider rows use merged cells that do
// not line up with the header. The extractor neutralizes comment markers
// before scanning, classifies rows by section so that repeated headers are
// dropped from the body but kept in the head, and filters out any row whose
// cell count does not match the header.
package table
