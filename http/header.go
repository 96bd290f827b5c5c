package http

import (
	"slices"
	"strconv"
	"strings"
)

// HeaderKind identifies the slot a header occupies in a set. Two
// headers of the same kind are the same header, later insertion wins;
// custom headers are distinguished by name.
type HeaderKind uint8

const (
	KindContentEncoding HeaderKind = iota
	KindContentType
	KindContentLength
	KindCustom
)

type Header struct {
	Kind  HeaderKind
	Name  string
	Value string
}

func ContentEncoding(value string) Header {
	return Header{Kind: KindContentEncoding, Name: "Content-Encoding", Value: value}
}

func ContentType(value string) Header {
	return Header{Kind: KindContentType, Name: "Content-Type", Value: value}
}

func ContentLength(n int) Header {
	return Header{Kind: KindContentLength, Name: "Content-Length", Value: strconv.Itoa(n)}
}

func CustomHeader(name, value string) Header {
	return Header{Kind: KindCustom, Name: name, Value: value}
}

// Same reports whether two headers occupy the same slot.
func (h Header) Same(other Header) bool {
	if h.Kind != other.Kind {
		return false
	}
	if h.Kind == KindCustom {
		return h.Name == other.Name
	}
	return true
}

// HeaderSet holds at most one header per slot, ordered by kind then
// name so encoded output is deterministic.
type HeaderSet struct {
	headers []Header
}

func (set *HeaderSet) Set(h Header) {
	for i := range set.headers {
		if set.headers[i].Same(h) {
			set.headers[i] = h
			return
		}
	}
	set.headers = append(set.headers, h)
	slices.SortStableFunc(set.headers, func(a, b Header) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// Get returns the header occupying the same slot as h.
func (set *HeaderSet) Get(h Header) (Header, bool) {
	for _, current := range set.headers {
		if current.Same(h) {
			return current, true
		}
	}
	return Header{}, false
}

func (set *HeaderSet) Len() int {
	return len(set.headers)
}
