// Package constants holds values shared between configuration and the components it selects.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// File storage providers.
const (
	StorageProviderBlob     = "blob"
	StorageProviderFirebase = "firebase"
)

// Summarizer providers.
const (
	SummarizerProviderGemini = "gemini"
)

// Document upload limits.
const (
	DocumentContentType     = "application/pdf"
	DocumentExtension       = ".pdf"
	DefaultMaxUploadSize    = 10 << 20
	DefaultFlashcardCount   = 20
	MinFlashcardCount       = 10
	MaxFlashcardCount       = 40
	DocumentStoragePrefix   = "documents"
	DocumentUpdateFrameType = "document_update"
)
