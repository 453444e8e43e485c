// seehuhn.de/go/xmpmeta - extract metadata from XMP packets
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/xmpmeta"
	"seehuhn.de/go/xmpmeta/jpeg"
)

type options struct {
	format    string
	chunkSize int
	raw       bool
	flatten   bool
	maxDepth  int
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "xmpdump [file...]",
		Short: "Print the XMP metadata of image files",
		Long: `xmpdump extracts XMP metadata from JPEG files and XMP sidecar files
and prints it grouped by category.  Input which does not start with a JPEG
signature is read as a bare XMP packet.  If no file is given, or the file
name is "-", standard input is read.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "json", "output format (json, yaml or xmp)")
	flags.IntVar(&opts.chunkSize, "chunk-size", 4096, "number of bytes passed to the parser at a time")
	flags.BoolVar(&opts.raw, "raw", false, "print unprocessed results, including internal properties")
	flags.BoolVar(&opts.flatten, "flatten", false, "merge all groups into a single map")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "maximum element nesting depth (0 for the default)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log parser diagnostics")

	cmd.AddCommand(newNamespacesCmd(), newPropertiesCmd())
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	switch opts.format {
	case "json", "yaml":
	case "xmp":
		if opts.flatten || len(args) > 1 {
			return errors.New("xmp output needs a single file and cannot be flattened")
		}
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	if opts.chunkSize <= 0 {
		return fmt.Errorf("invalid chunk size %d", opts.chunkSize)
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	if len(args) == 0 {
		args = []string{"-"}
	}

	out := make(map[string]any, len(args))
	for _, name := range args {
		res, err := extractFile(name, opts, log)
		if err != nil {
			return err
		}
		out[name] = res
	}

	var v any = out
	if len(args) == 1 {
		v = out[args[0]]
	}
	return write(cmd.OutOrStdout(), opts.format, v)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func extractFile(name string, opts *options, log *zap.Logger) (any, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		fd, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		r = fd
	}

	res, err := extract(r, opts, log.With(zap.String("file", name)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

func extract(r io.Reader, opts *options, log *zap.Logger) (any, error) {
	ropts := []xmpmeta.Option{xmpmeta.WithLogger(log)}
	if opts.maxDepth > 0 {
		ropts = append(ropts, xmpmeta.WithMaxDepth(opts.maxDepth))
	}
	xr := xmpmeta.New(ropts...)

	br := bufio.NewReader(r)
	sig, _ := br.Peek(2)
	if len(sig) == 2 && sig[0] == 0xFF && sig[1] == 0xD8 {
		packets, err := jpeg.Scan(br)
		if err != nil {
			return nil, err
		}
		if packets.Standard == nil {
			log.Info("no XMP packet found")
		} else {
			parseChunks(xr, packets.Standard, opts.chunkSize, log)
		}
		for _, ext := range packets.Extended {
			if !xr.ParseExtended(ext) {
				log.Warn("extended XMP segment rejected", zap.Error(xr.Err()))
			}
		}
	} else if err := parseStream(xr, br, opts.chunkSize, log); err != nil {
		return nil, err
	}

	switch {
	case opts.raw:
		return xr.RawResults(), nil
	case opts.flatten:
		return xr.Results().Flatten(xmpmeta.DefaultPrecedence), nil
	default:
		return xr.Results(), nil
	}
}

func parseChunks(xr *xmpmeta.Reader, data []byte, size int, log *zap.Logger) {
	for len(data) > 0 {
		n := min(size, len(data))
		if !xr.Parse(data[:n], n == len(data)) {
			log.Warn("XMP packet rejected", zap.Error(xr.Err()))
			return
		}
		data = data[n:]
	}
}

// parseStream feeds the contents of r to xr, chunk by chunk, without
// reading the whole input into memory.
func parseStream(xr *xmpmeta.Reader, r *bufio.Reader, size int, log *zap.Logger) error {
	buf := make([]byte, size)
	for {
		n, err := io.ReadFull(r, buf)
		final := false
		switch {
		case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
			final = true
		case err != nil:
			return err
		default:
			if _, err := r.Peek(1); errors.Is(err, io.EOF) {
				final = true
			}
		}
		if !xr.Parse(buf[:n], final) {
			log.Warn("XMP packet rejected", zap.Error(xr.Err()))
			return nil
		}
		if final {
			return nil
		}
	}
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "xmp":
		res, ok := v.(xmpmeta.Results)
		if !ok {
			return fmt.Errorf("cannot write %T as XMP", v)
		}
		data, err := res.Encode(nil)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
