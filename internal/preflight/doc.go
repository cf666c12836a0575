// Package preflight provides readiness checks for the scan root and the
// external tools mediatable depends on.
//
// These checks run in two contexts:
//   - The inventory command calls RequireDirectory before scanning so a
//     missing root fails fast with a configuration error.
//   - The CLI "mediatable check" command uses RunAll to display the status
//     of every check at once.
package preflight
