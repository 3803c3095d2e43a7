package xmltree

import "slices"

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the tree. Children and Attrs are ordered.
type Element struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []*Element
}

// NewElement returns an element with the given children.
func NewElement(tag string, children ...*Element) *Element {
	return &Element{Tag: tag, Children: children}
}

// NewText returns a leaf element holding text.
func NewText(tag, text string) *Element {
	return &Element{Tag: tag, Text: text}
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}

	out := &Element{
		Tag:   e.Tag,
		Text:  e.Text,
		Attrs: slices.Clone(e.Attrs),
	}

	if len(e.Children) > 0 {
		out.Children = make([]*Element, len(e.Children))
		for i, c := range e.Children {
			out.Children[i] = c.Clone()
		}
	}

	return out
}

// SetText replaces the element text.
func (e *Element) SetText(text string) {
	e.Text = text
}

// SetAttr sets an attribute, replacing an existing one of the same name.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}

	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Append adds children at the end.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Child returns the index-th child tagged tag.
func (e *Element) Child(tag string, index int) (*Element, bool) {
	n := 0

	for _, c := range e.Children {
		if c.Tag != tag {
			continue
		}

		if n == index {
			return c, true
		}

		n++
	}

	return nil, false
}

// ChildrenByTag returns the children tagged tag in document order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var out []*Element

	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}

	return out
}

// RemoveChildren removes every child tagged tag and returns how many were removed.
func (e *Element) RemoveChildren(tag string) int {
	before := len(e.Children)

	e.Children = slices.DeleteFunc(e.Children, func(c *Element) bool {
		return c.Tag == tag
	})

	return before - len(e.Children)
}

// InsertAfterLast inserts child right after the last child tagged anchorTag.
// Without such a child it is appended.
func (e *Element) InsertAfterLast(anchorTag string, child *Element) {
	e.insertAt(e.afterLast(anchorTag), child)
}

// ReplaceGroup replaces the children tagged tag with children. The new group
// takes the position of the first old member. When the group is empty it is
// placed after the last child tagged after, at the front when after is "",
// or at the end when no child is tagged after. Siblings of other tags keep
// their order.
func (e *Element) ReplaceGroup(tag, after string, children []*Element) {
	pos := slices.IndexFunc(e.Children, func(c *Element) bool {
		return c.Tag == tag
	})

	switch {
	case pos >= 0:
		e.RemoveChildren(tag)
	case after == "":
		pos = 0
	default:
		pos = e.afterLast(after)
	}

	e.insertAt(pos, children...)
}

func (e *Element) insertAt(pos int, children ...*Element) {
	e.Children = slices.Insert(e.Children, pos, children...)
}

// afterLast returns the position following the last child tagged tag, or
// len(Children) when there is none.
func (e *Element) afterLast(tag string) int {
	for i := len(e.Children) - 1; i >= 0; i-- {
		if e.Children[i].Tag == tag {
			return i + 1
		}
	}

	return len(e.Children)
}

// childTags returns the distinct child tags in first-seen order.
func (e *Element) childTags() []string {
	var tags []string

	for _, c := range e.Children {
		if !slices.Contains(tags, c.Tag) {
			tags = append(tags, c.Tag)
		}
	}

	return tags
}
