package services

// CollectionError indicates the store could not satisfy one of the briefing
// data reads. It is fatal to the briefing operation and never retried.
type CollectionError struct {
	Err error
}

func (e *CollectionError) Error() string {
	return "failed to collect briefing data: " + e.Err.Error()
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// GenerationError indicates the text-generation provider failed. It carries
// the provider's original error and is never retried.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "failed to generate briefing: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
