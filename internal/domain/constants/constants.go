// Package constants holds identifiers shared across layers.
package constants

// Storage drivers accepted by storage.driver
const (
	StorageDriverMemory   = "memory"
	StorageDriverBlob     = "blob"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
	StorageDriverS3       = "s3"
)

// Notification types
const (
	NotificationNewRequest      = "new_request"
	NotificationRequestApproved = "request_approved"
	NotificationRequestDeclined = "request_declined"
	NotificationNewInquiry      = "new_inquiry"
)
