// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the opaque storage boundary: string keys holding text values.
// Every domain collection is persisted as one JSON document under one key.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Persisted collection keys.
const (
	KeyListings         = "listings"
	KeyRequests         = "requests"
	KeyFacilities       = "facilities"
	KeyServices         = "services"
	KeyInquiries        = "inquiries"
	KeyStorageInquiries = "storageInquiries"
	KeyMessages         = "messages"
	KeyUsers            = "users"
	KeyCurrentUser      = "currentUser"
	KeyIsLoggedIn       = "isLoggedIn"
	KeyEditListingID    = "editListingId"
)

// NotificationsKey returns the per-user notification collection key.
func NotificationsKey(email string) string {
	return "notifications_" + email
}

// BookmarksKey returns the per-user bookmark collection key.
func BookmarksKey(email string) string {
	return "bookmarks_" + email
}
