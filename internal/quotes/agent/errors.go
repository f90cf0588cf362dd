package agent

import "errors"

// GenerationError reports model output that could not be turned into a
// quote. RawResponse is the untouched model text.
type GenerationError struct {
	Message     string
	RawResponse string
	Err         error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// AsGenerationError unwraps err to a *GenerationError if one is in the chain.
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}
