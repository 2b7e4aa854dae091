package k8s

// AlreadyExistsError is returned when a created object already exists.
type AlreadyExistsError struct {
	cause error
}

func (e *AlreadyExistsError) Error() string {
	return "already exists: " + e.cause.Error()
}

func (e *AlreadyExistsError) Unwrap() error {
	return e.cause
}

func (e *AlreadyExistsError) IsAlreadyExists() {}

// ConflictError is returned when a write lost an optimistic concurrency race.
type ConflictError struct {
	cause error
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.cause.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.cause
}

func (e *ConflictError) IsConflict() {}
