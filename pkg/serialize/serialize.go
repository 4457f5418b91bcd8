// Package serialize builds structured dumps of object graphs.
//
// A Context is threaded through every Serializable in a dump. Objects ask the
// context whether they have already been captured before emitting anything, so
// an object reachable from several paths appears once and later visits only
// leave a reference to the first record.
package serialize

import (
	"encoding/json"
	"sync"

	"gopkg.in/yaml.v3"
)

// Dictionary is a flat mapping of field names to values.
type Dictionary map[string]any

// Serializable is implemented by objects that can describe themselves into a
// Context. It returns false if the object could not be serialized.
type Serializable interface {
	Serialize(ctx *Context) bool
}

// Record is one emitted entry of a dump. Path is the name under which the
// object was first reached; Ref is set instead of Fields when the object was
// already represented by an earlier record.
type Record struct {
	ID     int        `json:"id" yaml:"id"`
	Path   string     `json:"path,omitempty" yaml:"path,omitempty"`
	Ref    *int       `json:"ref,omitempty" yaml:"ref,omitempty"`
	Fields Dictionary `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Context tracks which objects have been captured during one dump.
//
// The record store is shared and safe for concurrent use. Visit hands each
// Serializable its own view carrying the path it was reached by, so concurrent
// visits never see each other's paths.
type Context struct {
	*dump
	path string
}

type dump struct {
	mu      sync.Mutex
	seen    map[any]int
	records []Record
}

// NewContext returns an empty serialization context.
func NewContext() *Context {
	return &Context{dump: &dump{seen: make(map[any]int)}}
}

// PreviouslySerialized reports whether obj has already been captured in this
// context; obj must be comparable, typically a pointer.
//
// The first call for a given obj reserves its record and returns false; the
// caller then fills it with Emit. A repeated visit appends a reference record
// pointing at the reserved one.
func (c *Context) PreviouslySerialized(obj any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id, ok := c.seen[obj]; ok {
		ref := id
		c.records = append(c.records, Record{ID: len(c.records), Path: c.path, Ref: &ref})
		return true
	}

	id := len(c.records)
	c.seen[obj] = id
	c.records = append(c.records, Record{ID: id, Path: c.path})
	return false
}

// Emit stores fields in the record reserved for obj. It fails if obj was
// never marked, if fields is nil, or if the record is already filled.
func (c *Context) Emit(obj any, fields Dictionary) bool {
	if fields == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok := c.seen[obj]
	if !ok || c.records[id].Fields != nil {
		return false
	}
	c.records[id].Fields = fields
	return true
}

// Visit serializes s with path recorded as the name it was reached by.
func (c *Context) Visit(path string, s Serializable) bool {
	return s.Serialize(&Context{dump: c.dump, path: path})
}

// Records returns a copy of the emitted records in emission order.
func (c *Context) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of emitted records, references included.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// MarshalJSON renders the records as a JSON array.
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Records())
}

// MarshalYAML renders the records as a YAML sequence.
func (c *Context) MarshalYAML() (any, error) {
	return c.Records(), nil
}

// YAML is a helper returning the YAML encoding of the context.
func (c *Context) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
