package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"mth5meta/internal/attrs"
	"mth5meta/internal/metadict"
)

// Document formats accepted by -in and -out.
const (
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatMsgpack = "msgpack"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mth5meta %s [options] [file]\n\nOptions:\n", name)
		fs.PrintDefaults()
	}

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errUsage
		}

		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("%w: expected at most one input file", errUsage)
	}

	return nil
}

// formatOf picks the input format: an explicit -in wins, then the file
// extension, then JSON.
func formatOf(path, explicit string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".msgpack", ".mpk":
		return formatMsgpack
	default:
		return formatJSON
	}
}

// openInput returns the named file, or stdin for "" and "-".
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}

func readDocument(path, format string, stdin io.Reader) (*metadict.Map, error) {
	r, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	doc := metadict.New()

	switch f := formatOf(path, format); f {
	case formatJSON:
		err = doc.UnmarshalJSON(data)
	case formatYAML:
		err = yaml.Unmarshal(data, doc)
	case formatMsgpack:
		err = msgpack.Unmarshal(data, doc)
	default:
		return nil, fmt.Errorf("unknown input format %q", f)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", displayName(path), err)
	}

	return doc, nil
}

func writeDocument(w io.Writer, doc *metadict.Map, format string) error {
	switch strings.ToLower(format) {
	case "", formatJSON:
		data, err := doc.MarshalJSON()
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}

		buf.WriteByte('\n')

		_, err = w.Write(buf.Bytes())

		return err

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()

	case formatMsgpack:
		return msgpack.NewEncoder(w).Encode(doc)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// loadTable reads an attribute table. An empty path yields a nil table,
// which annotates nothing.
func loadTable(path string) (*attrs.Table, error) {
	if path == "" {
		return nil, nil
	}

	return attrs.LoadFile(path)
}

// createOutput returns the named file, or stdout for "" and "-".
func createOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}

	return f, f.Close, nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}

	return path
}
