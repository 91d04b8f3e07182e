package store

import (
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadCollection deserializes the list stored under key. Absent or corrupted
// data degrades to def rather than propagating an error; corruption is logged
// once at the boundary and never raised upward.
func LoadCollection[T any](s *Store, key string, def []T) []T {
	data, present := s.Read(key)
	if !present {
		return def
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		zap.S().Warnf("collection %s is corrupted, falling back to default: %s", key, err.Error())
		return def
	}
	if list == nil {
		return def
	}
	return list
}

// SaveCollection serializes and writes the list under key. A serialization or
// write failure is logged and swallowed; the in-memory attempt simply will not
// persist past the current session.
func SaveCollection[T any](s *Store, key string, list []T) {
	data, err := json.Marshal(list)
	if err != nil {
		zap.S().Errorf("collection %s serialization failed: %s", key, err.Error())
		return
	}
	if err := s.Write(key, data); err != nil {
		zap.S().Errorf("collection %s write failed: %s", key, err.Error())
	}
}
