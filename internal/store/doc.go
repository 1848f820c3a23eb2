// Package store defines the persistence interfaces for tasks. It keeps the
// service layer independent of the concrete database: implementations live
// under internal/platform, and callers depend only on the TaskStore
// interface, its query types, and the sentinel errors defined here.
package store
