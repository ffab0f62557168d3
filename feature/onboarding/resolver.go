package onboarding

import (
	"strings"
	"time"

	"school-onboarding/core/utils"
)

// Key is a canonicalized natural-key tuple.
type Key string

// KeyOf canonicalizes a natural-key tuple. Numeric parts collapse to one
// spelling regardless of the Go type a driver or sheet produced, and dates
// collapse to day precision, so sheet-sourced and store-sourced keys match.
func KeyOf(parts ...any) Key {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = keyPart(p)
	}
	return Key(strings.Join(strs, "\x1f"))
}

// OptionalKey builds a key only when its input was present; a nil result
// stands for an absent nullable reference.
func OptionalKey(ok bool, parts ...any) *Key {
	if !ok {
		return nil
	}
	k := KeyOf(parts...)
	return &k
}

// storedDateLayouts are the timestamp spellings drivers hand back for date
// columns. Key parts matching one of these collapse to day precision so they
// line up with sheet-sourced time.Time parts.
var storedDateLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

func keyPart(p any) string {
	switch v := p.(type) {
	case nil:
		return ""
	case string:
		return stringKeyPart(v)
	case []byte:
		return stringKeyPart(string(v))
	case time.Time:
		return v.Format("2006-01-02")
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return utils.ToString(utils.ToInt64(v))
	default:
		return utils.ToString(v)
	}
}

func stringKeyPart(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// Resolver tracks natural-key to generated-identifier mappings per entity
// type, built up incrementally as records are upserted during the current
// load pass (and pre-seeded from the store at startup).
type Resolver struct {
	ids map[Entity]map[Key]int64
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{ids: make(map[Entity]map[Key]int64)}
}

// Register records or overwrites the mapping for a natural key. Idempotent.
func (r *Resolver) Register(e Entity, k Key, id int64) {
	m, ok := r.ids[e]
	if !ok {
		m = make(map[Key]int64)
		r.ids[e] = m
	}
	m[k] = id
}

// Resolve returns the generated identifier for a natural key, failing with
// an UnresolvedReferenceError when the parent has not been registered.
func (r *Resolver) Resolve(e Entity, k Key) (int64, error) {
	if id, ok := r.ids[e][k]; ok {
		return id, nil
	}
	return 0, &UnresolvedReferenceError{Entity: e, Key: k}
}

// ResolveOptional resolves a nullable reference. A nil key (absent input)
// yields a nil id with no error; a present but unregistered key is still an
// UnresolvedReferenceError.
func (r *Resolver) ResolveOptional(e Entity, k *Key) (any, error) {
	if k == nil {
		return nil, nil
	}
	id, err := r.Resolve(e, *k)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// Len reports how many keys are registered for an entity.
func (r *Resolver) Len(e Entity) int {
	return len(r.ids[e])
}
