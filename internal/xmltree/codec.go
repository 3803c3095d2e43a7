package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const indent = "  "

// Decode reads one XML document from r.
//
// Text of an element that has children is trimmed; leaf text is kept as is.
// Namespace declarations are dropped and prefixed names lose their prefix.
func Decode(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Element
		stack []*Element
		texts []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, ErrMultipleRoots
			}

			el := &Element{Tag: t.Name.Local}

			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}

				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}

			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}

			stack = append(stack, el)
			texts = append(texts, &strings.Builder{})

		case xml.CharData:
			// text outside the root element is whitespace or junk
			if len(texts) > 0 {
				texts[len(texts)-1].Write(t)
			}

		case xml.EndElement:
			el := stack[len(stack)-1]
			text := texts[len(texts)-1].String()

			if len(el.Children) > 0 {
				text = strings.TrimSpace(text)
			}

			el.Text = text

			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}

	return root, nil
}

// Parse decodes an XML document held in memory.
func Parse(data []byte) (*Element, error) {
	return Decode(bytes.NewReader(data))
}

// ReadFile decodes the XML document stored at path.
func ReadFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	el, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return el, nil
}

// Encode writes el to w as a UTF-8 document with an XML declaration and
// two space indentation.
func Encode(w io.Writer, el *Element) error {
	if el == nil {
		return ErrNoRoot
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", indent)

	if err := encodeElement(enc, el); err != nil {
		return err
	}

	if err := enc.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

func encodeElement(enc *xml.Encoder, el *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.Tag}}
	for _, a := range el.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("element <%s>: %w", el.Tag, err)
	}

	if el.Text != "" {
		if err := enc.EncodeToken(xml.CharData(el.Text)); err != nil {
			return fmt.Errorf("element <%s>: %w", el.Tag, err)
		}
	}

	for _, c := range el.Children {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

// Marshal encodes el into a byte slice.
func Marshal(el *Element) ([]byte, error) {
	var buf bytes.Buffer

	if err := Encode(&buf, el); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile encodes el to path.
func WriteFile(path string, el *Element) error {
	data, err := Marshal(el)
	if err != nil {
		return fmt.Errorf("failed to marshal XML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
