package main

// runtimeError marks an error as having come from the conversion or
// validation pipeline itself, rather than from cobra's flag/argument
// parsing — the two fail differently per spec §6's exit codes.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

func wrapRuntime(err error) error {
	if err == nil {
		return nil
	}
	return &runtimeError{err: err}
}

// exitCodeFor maps an error returned from rootCmd.Execute into the exit
// codes spec §6 defines: 1 for a validation or conversion failure the
// pipeline itself raised, 2 for anything else — bad flags, missing
// arguments, usage errors cobra catches before RunE's body ever runs.
func exitCodeFor(err error) int {
	if _, ok := err.(*runtimeError); ok {
		return 1
	}
	return 2
}
