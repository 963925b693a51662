// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers
const (
	MailProviderBrevo = "brevo"
	MailProviderLog   = "log"
)

// Image folders in the bucket
const (
	FolderUsers      = "users"
	FolderProperties = "properties"
	FolderNews       = "news"
)

// MaxPasswordBytes is the longest input bcrypt hashes.
const MaxPasswordBytes = 72

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)
