/*
 * compress.go, part of pairdist.
 *
 * Copyright 2026 The pairdist authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package pairdist

import (
	"compress/bzip2"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression returns the compression implied by the suffix of the file
// name: "gzip", "zstd", "bzip2", or the empty string for none.
func Compression(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".gz"):
		return "gzip"
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return "zstd"
	case strings.HasSuffix(n, ".bz2"):
		return "bzip2"
	}
	return ""
}

// TrimCompression returns name without its compression suffix, if any.
func TrimCompression(name string) string {
	if Compression(name) == "" {
		return name
	}
	return name[:strings.LastIndex(name, ".")]
}

// NewDecompressor returns a reader that decompresses r according to the
// suffix of name. For uncompressed names it returns r itself, with a
// no-op Close.
func NewDecompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch Compression(name) {
	case "gzip":
		return gzip.NewReader(r)
	case "zstd":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case "bzip2":
		return io.NopCloser(bzip2.NewReader(r)), nil
	}
	return io.NopCloser(r), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewCompressor returns a writer that compresses into w according to the
// suffix of name. Closing it flushes the compressed stream but does not
// close w. bzip2 is only supported for reading.
func NewCompressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch Compression(name) {
	case "gzip":
		return gzip.NewWriter(w), nil
	case "zstd":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "bzip2":
		return nil, fmt.Errorf("can't write %s: bzip2 is only supported for reading", name)
	}
	return nopWriteCloser{w}, nil
}
