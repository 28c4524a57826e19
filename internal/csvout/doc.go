// Package csvout writes extracted tables to CSV files.
//
// Output is a header line followed by one line per row. Parent directories
// are created as needed. Writing zero rows is an error; a file with only a
// header would silently hide a scrape failure.
package csvout
