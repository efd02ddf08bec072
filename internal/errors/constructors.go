package errors

// Configuration

func ConfigNotFound(path string) *DocNavError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *DocNavError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocNavError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Content

func ContentDirMissing(dir string) *DocNavError {
	return New(CategoryConfig, SeverityFatal, "content directory not found").
		WithContext("dir", dir)
}

func ContentError(file string, cause error) *DocNavError {
	return Wrap(cause, CategoryContent, SeverityError, "content file unreadable").
		WithContext("file", file)
}

func PageNotFound(slug string) *DocNavError {
	return New(CategoryValidation, SeverityWarning, "page not found").
		WithContext("slug", slug)
}

// Index

func IndexError(operation string, cause error) *DocNavError {
	return Wrap(cause, CategoryIndex, SeverityError, "page index operation failed").
		WithContext("operation", operation)
}

// Network

func PublishFailed(subject string, cause error) *DocNavError {
	return WrapRetryable(cause, CategoryNetwork, SeverityWarning, "event publish failed").
		WithContext("subject", subject)
}

// Internal

func InternalError(message string, cause error) *DocNavError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
