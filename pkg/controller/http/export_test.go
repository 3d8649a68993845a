package http

// Test-only exports
var (
	DecodeFormJSON = decodeFormJSON
	SubmitStatus   = submitStatus
)
