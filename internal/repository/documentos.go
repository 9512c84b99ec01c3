// Package repository provides typed access to the JSON documents held in the
// key-value store. Repositories only encode and decode; all business rules
// live in the service layer.
package repository

import "encoding/json"

// getter abstracts store.Store.Get and store.Tx.Get so each repository can
// offer both a direct and an in-transaction read path.
type getter func(key string) ([]byte, error)

func loadDoc[T any](get getter, key string, out *T) error {
	raw, err := get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func encodeDoc[T any](v T) ([]byte, error) {
	return json.Marshal(v)
}
