// Package driver resolves connection-string schemes to the bundled
// database/sql drivers and their SQL dialects.
package driver
