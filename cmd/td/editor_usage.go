package main

// wantsEditor decides whether a command should hand the task off to
// $EDITOR. Explicit --edit and --no-edit win, in that order; otherwise
// the editor opens only for an interactive session where no field
// flags were given.
func wantsEditor(editFlag, noEditFlag, hasFieldFlags, interactive bool) bool {
	switch {
	case editFlag:
		return true
	case noEditFlag, hasFieldFlags:
		return false
	default:
		return interactive
	}
}
