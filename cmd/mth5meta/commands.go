package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mth5meta/internal/diagnostic"
	"mth5meta/internal/fgdc"
	"mth5meta/internal/metadict"
	"mth5meta/internal/server"
	"mth5meta/internal/transcode"
	"mth5meta/internal/xmltree"
)

func runFlatten(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("flatten")
	sep := fs.String("sep", metadict.DefaultSeparator, "key separator")
	prefix := fs.String("prefix", "", "prefix prepended to every key")
	strict := fs.Bool("strict", false, "reject keys that contain the separator")
	in := fs.String("in", "", "input format: json, yaml or msgpack (default from extension)")
	out := fs.String("out", formatJSON, "output format: json, yaml or msgpack")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	doc, err := readDocument(fs.Arg(0), *in, stdin)
	if err != nil {
		return err
	}

	opts := []metadict.Option{metadict.WithSeparator(*sep), metadict.WithPrefix(*prefix)}
	if *strict {
		opts = append(opts, metadict.WithStrictKeys())
	}

	flat, err := metadict.Flatten(doc, opts...)
	if err != nil {
		return err
	}

	return writeDocument(stdout, flat, *out)
}

func runStructure(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("structure")
	sep := fs.String("sep", metadict.DefaultSeparator, "key separator")
	in := fs.String("in", "", "input format: json, yaml or msgpack (default from extension)")
	out := fs.String("out", formatJSON, "output format: json, yaml or msgpack")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	flat, err := readDocument(fs.Arg(0), *in, stdin)
	if err != nil {
		return err
	}

	doc, err := metadict.Structure(flat, metadict.WithSeparator(*sep))
	if err != nil {
		return err
	}

	return writeDocument(stdout, doc, *out)
}

func runToXML(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("to-xml")
	attrsPath := fs.String("attrs", "", "attribute table (YAML) used for units and type annotations")
	flat := fs.Bool("flat", false, "input is a flat document")
	sep := fs.String("sep", metadict.DefaultSeparator, "key separator for -flat")
	in := fs.String("in", "", "input format: json, yaml or msgpack (default from extension)")
	output := fs.String("o", "", "output file (default stdout)")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	table, err := loadTable(*attrsPath)
	if err != nil {
		return err
	}

	doc, err := readDocument(fs.Arg(0), *in, stdin)
	if err != nil {
		return err
	}

	var root *xmltree.Element
	if *flat {
		root, err = transcode.RenderFlat(doc, table, metadict.WithSeparator(*sep))
	} else {
		root, err = transcode.Render(doc, table)
	}

	if err != nil {
		return err
	}

	w, closeFn, err := createOutput(*output, stdout)
	if err != nil {
		return err
	}

	if err := xmltree.Encode(w, root); err != nil {
		_ = closeFn()
		return err
	}

	return closeFn()
}

func runFromXML(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("from-xml")
	attrsPath := fs.String("attrs", "", "attribute table (YAML) used by -coerce")
	coerce := fs.Bool("coerce", false, "convert leaves to the types declared in -attrs")
	flat := fs.Bool("flat", false, "emit a flat document")
	sep := fs.String("sep", metadict.DefaultSeparator, "key separator for -flat")
	out := fs.String("out", formatJSON, "output format: json, yaml or msgpack")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *coerce && *attrsPath == "" {
		return fmt.Errorf("%w: -coerce needs -attrs", errUsage)
	}

	table, err := loadTable(*attrsPath)
	if err != nil {
		return err
	}

	r, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer r.Close()

	root, err := xmltree.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", displayName(fs.Arg(0)), err)
	}

	doc := transcode.Parse(root)

	if *coerce {
		if doc, err = transcode.Coerce(doc, table); err != nil {
			return err
		}
	}

	if *flat {
		if doc, err = metadict.Flatten(doc, metadict.WithSeparator(*sep)); err != nil {
			return err
		}
	}

	return writeDocument(stdout, doc, *out)
}

func runValidate(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("validate")
	attrsPath := fs.String("attrs", "", "attribute table (YAML), required")
	in := fs.String("in", "", "input format: json, yaml or msgpack (default from extension)")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *attrsPath == "" {
		fs.Usage()
		return fmt.Errorf("%w: -attrs is required", errUsage)
	}

	table, err := loadTable(*attrsPath)
	if err != nil {
		return err
	}

	doc, err := readDocument(fs.Arg(0), *in, stdin)
	if err != nil {
		return err
	}

	diags := table.Validate(doc)
	printDiagnostics(stdout, diags)

	return diags.Error()
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if diags.IsValid() {
		fmt.Fprintf(w, "ok: %d warning(s)\n", len(diags.Warnings))
	}
}

func runFGDC(args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("fgdc")
	templatePath := fs.String("template", "", "FGDC XML template, required")
	configPath := fs.String("config", "", "survey config (YAML), required")
	output := fs.String("o", "", "output file (default stdout)")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *templatePath == "" || *configPath == "" {
		fs.Usage()
		return fmt.Errorf("%w: -template and -config are required", errUsage)
	}

	cfg, err := fgdc.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	diags := cfg.Diagnostics()
	for _, w := range diags.Warnings {
		log.Printf("warning: %s", w)
	}

	rec, err := fgdc.LoadTemplate(*templatePath)
	if err != nil {
		return err
	}

	if err := rec.Apply(cfg); err != nil {
		return err
	}

	if *output != "" && *output != "-" {
		return rec.WriteFile(*output)
	}

	data, err := rec.Marshal()
	if err != nil {
		return err
	}

	_, err = stdout.Write(data)

	return err
}

func runServe(args []string, _ io.Reader, _ io.Writer) error {
	fs := newFlagSet("serve")
	addr := fs.String("addr", ":8080", "listen address")
	attrsPath := fs.String("attrs", "", "attribute table (YAML)")
	bodyLimit := fs.String("body-limit", "8M", "maximum request body size")
	logRequests := fs.Bool("log-requests", false, "log every request")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	table, err := loadTable(*attrsPath)
	if err != nil {
		return err
	}

	e := server.New(server.Dependencies{
		Table:          table,
		Version:        Version,
		BodyLimit:      *bodyLimit,
		RequestLogging: *logRequests,
	})
	e.HidePort = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		log.Printf("mth5meta %s listening on %s (%d attributes)", Version, *addr, table.Len())
		errCh <- e.Start(*addr)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
