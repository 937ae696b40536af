package fbauth

// SigningError wraps a failure to read the outgoing request body or sign
// it, distinct from whatever error the wrapped transport itself returns.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string { return "fbauth: sign request: " + e.Err.Error() }
func (e *SigningError) Unwrap() error { return e.Err }
