// Package fileutil holds small filesystem helpers shared by the storage
// backends.
package fileutil
