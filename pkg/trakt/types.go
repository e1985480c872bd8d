// Package trakt provides a client for the Trakt API v2 trending feeds.
package trakt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// NamespaceTVDB is the id namespace Trakt uses for TheTVDB identifiers.
const NamespaceTVDB = "tvdb"

// ExternalID is a single (namespace, value) identifier pair attached to a show.
type ExternalID struct {
	Namespace string
	Value     string
}

// IDs is the ordered list of identifiers Trakt returns in a show's "ids" object.
// Order follows the JSON document; null values are dropped.
type IDs []ExternalID

// Lookup returns the value of the first pair in the given namespace.
func (ids IDs) Lookup(namespace string) (string, bool) {
	for _, id := range ids {
		if id.Namespace == namespace {
			return id.Value, true
		}
	}
	return "", false
}

// TVDBID extracts the numeric TheTVDB id.
// Returns false when the pair is absent or its value is not an integer.
func TVDBID(ids IDs) (int, bool) {
	v, ok := ids.Lookup(NamespaceTVDB)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// UnmarshalJSON decodes an "ids" object while keeping key order.
func (ids *IDs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode ids: %w", err)
	}
	if tok == nil {
		*ids = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("decode ids: expected object")
	}

	out := IDs{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode ids key: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode ids.%s: %w", key, err)
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			continue
		}

		value := string(raw)
		if raw[0] == '"' {
			if err := json.Unmarshal(raw, &value); err != nil {
				return fmt.Errorf("decode ids.%s: %w", key, err)
			}
		}
		out = append(out, ExternalID{Namespace: key, Value: value})
	}

	*ids = out
	return nil
}

// MarshalJSON encodes the pairs back into an object, numbers unquoted.
func (ids IDs) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(id.Namespace)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		if _, err := strconv.ParseInt(id.Value, 10, 64); err == nil {
			b.WriteString(id.Value)
			continue
		}
		val, err := json.Marshal(id.Value)
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// Show is a show as returned inside Trakt list endpoints.
type Show struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// FullTitle returns "Title (Year)".
func (s Show) FullTitle() string {
	return fmt.Sprintf("%s (%d)", s.Title, s.Year)
}

// TrendingShow is a show from the trending feed with its current watcher count.
type TrendingShow struct {
	Show
	Watchers int `json:"watchers"`
}

// trendingItem is one element of the GET /shows/trending response.
type trendingItem struct {
	Watchers int  `json:"watchers"`
	Show     Show `json:"show"`
}
