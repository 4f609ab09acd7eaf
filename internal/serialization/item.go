// Package serialization implements the self-describing document model used
// to carry one captured change: a small element tree ([Item]) wrapped in a
// [Record], plus the normalizers that turn typed field values into their
// canonical string form and back.
//
// A serialized entity looks like
//
//	<Patient>
//	  <uuid type="string">0b7d...</uuid>
//	  <birthdate type="timestamp">1980-02-01 00:00:00.000</birthdate>
//	  <creator type="User">8f1c...</creator>
//	</Patient>
//
// where the type attribute is either a [ValueType] or, for references, the
// referenced entity's type name with the referenced uuid as text.
package serialization

// Attr is one attribute of an [Item]. Attribute order is preserved.
type Attr struct {
	Name  string
	Value string
}

// Item is one element of a [Record] tree.
type Item struct {
	name     string
	attrs    []Attr
	text     string
	hasText  bool
	children []*Item
}

// NewItem returns a detached element called name.
func NewItem(name string) *Item {
	return &Item{name: name}
}

// Name returns the element name.
func (i *Item) Name() string {
	return i.name
}

// SetAttribute sets or replaces an attribute and returns i for chaining.
func (i *Item) SetAttribute(name, value string) *Item {
	for idx := range i.attrs {
		if i.attrs[idx].Name == name {
			i.attrs[idx].Value = value
			return i
		}
	}
	i.attrs = append(i.attrs, Attr{Name: name, Value: value})
	return i
}

// Attribute returns the value of the named attribute.
func (i *Item) Attribute(name string) (string, bool) {
	for _, a := range i.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns a copy of the attribute list.
func (i *Item) Attributes() []Attr {
	out := make([]Attr, len(i.attrs))
	copy(out, i.attrs)
	return out
}

// SetText sets the text content. An empty string is kept as content and is
// distinct from no content at all.
func (i *Item) SetText(text string) *Item {
	i.text = text
	i.hasText = true
	return i
}

// Text returns the text content and whether any was set.
func (i *Item) Text() (string, bool) {
	return i.text, i.hasText
}

// CreateItem appends a new child element and returns it.
func (i *Item) CreateItem(name string) *Item {
	child := NewItem(name)
	i.children = append(i.children, child)
	return child
}

// Children returns the child elements in document order.
func (i *Item) Children() []*Item {
	return i.children
}

// Child returns the first child called name, or nil.
func (i *Item) Child(name string) *Item {
	for _, c := range i.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// AppendField adds a <name type="valueType">text</name> child, the shape
// every serialized property takes.
func (i *Item) AppendField(name, valueType, text string) *Item {
	return i.CreateItem(name).SetAttribute(AttrType, valueType).SetText(text)
}

// Well-known attribute names.
const (
	AttrType     = "type"
	AttrUUID     = "uuid"
	AttrAction   = "action"
	AttrProperty = "property"
)
