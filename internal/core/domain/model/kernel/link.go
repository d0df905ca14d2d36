package kernel

import (
	"bytes"
	"encoding/json"
	"fmt"

	"payroll/internal/pkg/errs"
)

// Rel is a link relation name inside the _links mapping of a hypermedia
// document. It names the semantic relationship of a link, not its target.
type Rel string

const (
	// RelSelf points at the canonical URI of the document itself.
	RelSelf Rel = "self"

	// RelEmployees points at the employee collection resource.
	RelEmployees Rel = "employees"

	// RelOrders points at the order collection resource.
	RelOrders Rel = "orders"

	// RelComplete advertises that the order can currently be completed.
	RelComplete Rel = "complete"

	// RelCancel advertises that the order can currently be cancelled.
	RelCancel Rel = "cancel"
)

// Link is a single hypermedia link. Only the href is carried; clients
// derive meaning from the relation name under which the link appears.
type Link struct {
	Href string `json:"href"`
}

// LinkSet is an insertion-ordered mapping from link relation to Link.
//
// Ordering matters: the representation contract requires that the same
// entity state always yields a byte-identical document, with links in
// canonical order (self first, then the collection relation, then any
// state-dependent affordances). A plain map cannot guarantee that, so
// LinkSet keeps relations in the order they were added and marshals them
// as a JSON object in that order.
//
// The zero value is an empty set ready for use.
type LinkSet struct {
	rels  []Rel
	links map[Rel]Link
}

// NewLinkSet creates an empty LinkSet.
func NewLinkSet() *LinkSet {
	return &LinkSet{
		links: make(map[Rel]Link),
	}
}

// Add appends a link under the given relation. Adding an existing
// relation replaces its href but keeps its original position.
// Add returns the set to allow chained construction.
func (ls *LinkSet) Add(rel Rel, href string) *LinkSet {
	if ls.links == nil {
		ls.links = make(map[Rel]Link)
	}
	if _, ok := ls.links[rel]; !ok {
		ls.rels = append(ls.rels, rel)
	}
	ls.links[rel] = Link{Href: href}
	return ls
}

// Href returns the href stored under rel and whether it is present.
func (ls *LinkSet) Href(rel Rel) (string, bool) {
	if ls == nil || ls.links == nil {
		return "", false
	}
	link, ok := ls.links[rel]
	return link.Href, ok
}

// Has reports whether the set advertises the given relation.
func (ls *LinkSet) Has(rel Rel) bool {
	_, ok := ls.Href(rel)
	return ok
}

// Rels returns the relations in insertion order.
func (ls *LinkSet) Rels() []Rel {
	if ls == nil {
		return nil
	}
	out := make([]Rel, len(ls.rels))
	copy(out, ls.rels)
	return out
}

// Len returns the number of links in the set.
func (ls *LinkSet) Len() int {
	if ls == nil {
		return 0
	}
	return len(ls.rels)
}

// MarshalJSON renders the set as a JSON object whose keys appear in
// insertion order. encoding/json would sort map keys alphabetically,
// which breaks the canonical link ordering, so the object is built by hand.
func (ls *LinkSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rel := range ls.rels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(rel))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(ls.links[rel])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a _links object, preserving the order in which the
// relations appear on the wire. The token walk is needed because decoding
// into a map would lose ordering.
func (ls *LinkSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errs.NewValueIsInvalidErrorWithCause("_links", fmt.Errorf("expected object, got %v", tok))
	}

	ls.rels = nil
	ls.links = make(map[Rel]Link)

	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return keyErr
		}
		key, ok := keyTok.(string)
		if !ok {
			return errs.NewValueIsInvalidErrorWithCause("_links", fmt.Errorf("expected string key, got %v", keyTok))
		}

		var link Link
		if decodeErr := dec.Decode(&link); decodeErr != nil {
			return decodeErr
		}

		ls.Add(Rel(key), link.Href)
	}

	if _, err = dec.Token(); err != nil {
		return err
	}
	return nil
}
