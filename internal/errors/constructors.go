package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteGenError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigMalformed(path string, cause error) *SiteGenError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file is not valid JSON").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteGenError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Content errors

func ContentReadError(path string, cause error) *SiteGenError {
	return Wrap(cause, CategoryContent, SeverityWarning, "content file unreadable").
		WithContext("path", path)
}

// Template errors

func TemplateNotFound(name string) *SiteGenError {
	return New(CategoryTemplate, SeverityFatal, "template not found").
		WithContext("template", name)
}

func TemplateRenderError(name string, cause error) *SiteGenError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "template render failed").
		WithContext("template", name)
}

// Output errors

func OutputWriteError(path string, cause error) *SiteGenError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}

// Git errors

func GitCloneError(url string, cause error) *SiteGenError {
	return Wrap(cause, CategoryGit, SeverityFatal, "repository clone failed").
		WithContext("url", url)
}

// Internal errors

func InternalError(message string, cause error) *SiteGenError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
