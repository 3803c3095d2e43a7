// handlers.go - Transform handlers
package server

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"mth5meta/internal/attrs"
	"mth5meta/internal/metadict"
	"mth5meta/internal/transcode"
	"mth5meta/internal/xmltree"
)

// Media types beyond what echo names.
const (
	MIMEApplicationMsgpack = "application/msgpack"
	MIMEApplicationYAML    = "application/yaml"
)

// Handler serves the transform endpoints. The attribute table is read only
// and shared by all requests.
type Handler struct {
	table   *attrs.Table
	version string
}

// NewHandler creates a handler. table may be nil.
func NewHandler(table *attrs.Table, version string) *Handler {
	return &Handler{table: table, version: version}
}

// HandleHealth returns server health status
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":     "ok",
		"version":    h.version,
		"attributes": h.table.Len(),
	})
}

// HandleFlatten flattens a nested document.
// Query: sep (default "."), prefix, strict.
func (h *Handler) HandleFlatten(c echo.Context) error {
	doc, err := readDocument(c)
	if err != nil {
		return err
	}

	opts := options(c)

	if p := c.QueryParam("prefix"); p != "" {
		opts = append(opts, metadict.WithPrefix(p))
	}

	flat, err := metadict.Flatten(doc, opts...)
	if err != nil {
		return FromTransformError(err)
	}

	return respond(c, http.StatusOK, flat)
}

// HandleStructure nests a flat document.
// Query: sep (default ".").
func (h *Handler) HandleStructure(c echo.Context) error {
	flat, err := readDocument(c)
	if err != nil {
		return err
	}

	opts := options(c)

	doc, err := metadict.Structure(flat, opts...)
	if err != nil {
		return FromTransformError(err)
	}

	return respond(c, http.StatusOK, doc)
}

// HandleRender renders a document as XML. With flat=true the body is a flat
// document and is structured first.
func (h *Handler) HandleRender(c echo.Context) error {
	doc, err := readDocument(c)
	if err != nil {
		return err
	}

	opts := options(c)

	var root *xmltree.Element

	if flag(c, "flat") {
		root, err = transcode.RenderFlat(doc, h.table, opts...)
	} else {
		root, err = transcode.Render(doc, h.table)
	}

	if err != nil {
		return FromTransformError(err)
	}

	data, err := xmltree.Marshal(root)
	if err != nil {
		return NewInternalError("failed to encode XML", err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, data)
}

// HandleParse parses an XML body into a document. With coerce=true leaves
// are converted to the types declared in the attribute table.
func (h *Handler) HandleParse(c echo.Context) error {
	root, err := xmltree.Decode(c.Request().Body)
	if err != nil {
		return FromTransformError(err)
	}

	doc := transcode.Parse(root)

	if flag(c, "coerce") {
		if doc, err = transcode.Coerce(doc, h.table); err != nil {
			return FromTransformError(err)
		}
	}

	return respond(c, http.StatusOK, doc)
}

func options(c echo.Context) []metadict.Option {
	var opts []metadict.Option

	if sep := c.QueryParam("sep"); sep != "" {
		opts = append(opts, metadict.WithSeparator(sep))
	}

	if flag(c, "strict") {
		opts = append(opts, metadict.WithStrictKeys())
	}

	return opts
}

func flag(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && v
}

// readDocument decodes the request body according to its content type.
func readDocument(c echo.Context) (*metadict.Map, error) {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	body := c.Request().Body
	doc := metadict.New()

	var err error

	switch {
	case ct == "", strings.HasPrefix(ct, echo.MIMEApplicationJSON):
		var data []byte
		if data, err = io.ReadAll(body); err == nil {
			err = doc.UnmarshalJSON(data)
		}
	case strings.HasPrefix(ct, MIMEApplicationYAML):
		err = yaml.NewDecoder(body).Decode(doc)
	case strings.HasPrefix(ct, MIMEApplicationMsgpack):
		err = msgpack.NewDecoder(body).Decode(doc)
	default:
		return nil, NewUnsupportedMediaError(ct)
	}

	if err != nil {
		return nil, NewBadRequestError("invalid document", err)
	}

	return doc, nil
}

// respond writes m as msgpack when the client accepts it, JSON otherwise.
func respond(c echo.Context, status int, m *metadict.Map) error {
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), MIMEApplicationMsgpack) {
		data, err := msgpack.Marshal(m)
		if err != nil {
			return NewInternalError("failed to encode msgpack", err)
		}

		return c.Blob(status, MIMEApplicationMsgpack, data)
	}

	return c.JSON(status, m)
}
