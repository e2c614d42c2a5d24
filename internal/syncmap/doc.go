// Package syncmap offers a lightweight, generic, concurrency-safe map with
// basic Get/Set/Delete operations guarded by a sync.RWMutex. It backs the
// tool lookup index which is read by concurrent protocol callers.
package syncmap
