// Package cli turns command-line arguments and an optional HCL file into
// merge settings, and builds the source store they point at.
package cli
