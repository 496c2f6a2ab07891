// Package blobstore keeps the uploaded compliance documents. Every backend
// stores an object under the caller's path (plus an optional prefix) and
// hands out time-limited download URLs.
package blobstore

import (
	"errors"
	"strings"
)

var ErrObjectNotFound = errors.New("blob object not found")

func objectKey(prefix, p string) string {
	p = strings.TrimLeft(p, "/")
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return p
	}
	return prefix + "/" + p
}
