// Package editor holds the parameter editor core: the reconciler that merges
// externally supplied definitions and models with in-progress edits, the edit
// buffer itself, and the accessor hosts use to read the canonical model.
//
// Frontends (pkg/renderers/...) drive an Editor through two distinct event
// sources. SetInputs is the externally triggered recompute and always runs
// the reconciler; Edit is the locally triggered mutation and never does. The
// Handle returned by Editor.Handle stays correct regardless of which frontend
// (or none) is attached.
package editor
