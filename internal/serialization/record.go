package serialization

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is a serialized document with a single root [Item].
type Record struct {
	root *Item
}

// NewRecord creates a document whose root element is called rootName.
func NewRecord(rootName string) *Record {
	return &Record{root: NewItem(rootName)}
}

// Root returns the root element.
func (r *Record) Root() *Item {
	return r.root
}

// String encodes the document, returning an empty string on failure. Use
// [Record.Encode] when the error matters.
func (r *Record) String() string {
	s, _ := r.Encode()
	return s
}

// Encode renders the document as XML without a prolog.
func (r *Record) Encode() (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := encodeItem(enc, r.root); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return buf.String(), nil
}

func encodeItem(enc *xml.Encoder, item *Item) error {
	start := xml.StartElement{Name: xml.Name{Local: item.name}}
	for _, a := range item.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if item.hasText && item.text != "" {
		if err := enc.EncodeToken(xml.CharData(item.text)); err != nil {
			return err
		}
	}
	for _, c := range item.children {
		if err := encodeItem(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Parse decodes a document produced by [Record.Encode].
func Parse(s string) (*Record, error) {
	dec := xml.NewDecoder(strings.NewReader(s))

	var stack []*Item
	var root *Item

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var item *Item
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: more than one root element", ErrMalformed)
				}
				item = NewItem(t.Name.Local)
				root = item
			} else {
				item = stack[len(stack)-1].CreateItem(t.Name.Local)
			}
			for _, a := range t.Attr {
				item.SetAttribute(a.Name.Local, a.Value)
			}
			stack = append(stack, item)
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, fmt.Errorf("%w: text outside root element", ErrMalformed)
				}
				continue
			}
			top := stack[len(stack)-1]
			if len(top.children) == 0 {
				top.text += string(t)
				top.hasText = true
			}
		case xml.EndElement:
			top := stack[len(stack)-1]
			// an element with children carries no text of its own
			if len(top.children) > 0 {
				top.text, top.hasText = "", false
			}
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	return &Record{root: root}, nil
}
