// Package deps reports whether the external binaries mediatable launches are
// installed, and captures their version line for diagnostics.
package deps
