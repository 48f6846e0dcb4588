package storage

import (
	"encoding/json"
	"log"
)

// ReadJSON loads a named document into a value of type T. An absent,
// unreadable, or corrupt document yields fallback; reads never fail
// outward. Read problems other than plain absence are logged so data
// corruption does not go entirely unnoticed.
func ReadJSON[T any](b Backend, name string, fallback T) T {
	data, ok, err := b.Read(name)
	if err != nil {
		log.Printf("storage: read %s failed, using default: %v", name, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		log.Printf("storage: %s is not valid JSON, using default: %v", name, err)
		return fallback
	}
	return value
}

// WriteJSON serializes v and replaces the named document in full.
func WriteJSON(b Backend, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return b.Write(name, data)
}

// EnsureJSON creates the named document with defaultValue when it does not
// exist yet. Idempotent across restarts.
func EnsureJSON(b Backend, name string, defaultValue any) error {
	if _, ok, err := b.Read(name); err != nil {
		return err
	} else if ok {
		return nil
	}
	if err := WriteJSON(b, name, defaultValue); err != nil {
		return err
	}
	log.Printf("storage: created %s", name)
	return nil
}
