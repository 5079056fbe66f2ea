// Package flagstore provides a mutable string-keyed property store and a
// boolean-flavored flag built on top of it. A Store is an explicitly passed
// object: there is no process-global state, which keeps code using it
// testable.
package flagstore

import (
	"strings"
)

const truthyValue = "true"

// Store maps string keys to string values. There is no ordering guarantee
// beyond last write wins. A Store is not safe for concurrent use.
type Store struct {
	properties map[string]string
}

func NewStore() *Store {
	return &Store{properties: make(map[string]string)}
}

// Get returns the value stored under key, or the empty string if the key is
// not set.
func (s *Store) Get(key string) string {
	return s.properties[key]
}

// Set stores value under key and returns the previously stored value, if
// there was one.
func (s *Store) Set(key, value string) (previous string, existed bool) {
	previous, existed = s.properties[key]
	s.properties[key] = value
	return previous, existed
}

func (s *Store) IsSet(key string) bool {
	_, ok := s.properties[key]
	return ok
}

func (s *Store) Clear(key string) {
	delete(s.properties, key)
}

// Flag is a boolean view of a single key in a Store. The case-insensitive
// string "true" is the truthy encoding; any other value, or an unset key,
// reads as disabled.
type Flag struct {
	store *Store
	key   string
}

func NewFlag(store *Store, key string) Flag {
	return Flag{store: store, key: key}
}

func (f Flag) Enable() {
	f.store.Set(f.key, truthyValue)
}

func (f Flag) Disable() {
	f.store.Clear(f.key)
}

// Toggle flips the flag and returns the new state.
func (f Flag) Toggle() bool {
	if f.IsEnabled() {
		f.Disable()
		return false
	}
	f.Enable()
	return true
}

func (f Flag) IsEnabled() bool {
	return strings.EqualFold(f.store.Get(f.key), truthyValue)
}
