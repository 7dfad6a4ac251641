package tablesql

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// CompressionType identifies how a file's bytes are compressed.
type CompressionType int

const (
	// CompressionNone means the bytes are not compressed.
	CompressionNone CompressionType = iota
	// CompressionGZ is gzip.
	CompressionGZ
	// CompressionBZ2 is bzip2.
	CompressionBZ2
	// CompressionXZ is xz.
	CompressionXZ
	// CompressionZSTD is zstandard.
	CompressionZSTD
)

// Extension returns the file extension for the compression type, with
// the leading dot, or "" for CompressionNone.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGZ:
		return ".gz"
	case CompressionBZ2:
		return ".bz2"
	case CompressionXZ:
		return ".xz"
	case CompressionZSTD:
		return ".zst"
	default:
		return ""
	}
}

// compressionForPath detects the compression type from the path's last
// extension and returns the path with that extension removed.
func compressionForPath(path string) (CompressionType, string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGZ, strings.TrimSuffix(path, filepath.Ext(path))
	case ".bz2":
		return CompressionBZ2, strings.TrimSuffix(path, filepath.Ext(path))
	case ".xz":
		return CompressionXZ, strings.TrimSuffix(path, filepath.Ext(path))
	case ".zst":
		return CompressionZSTD, strings.TrimSuffix(path, filepath.Ext(path))
	default:
		return CompressionNone, path
	}
}

// decompressReader wraps reader with a decompressor for the compression
// type. The returned close function releases decompressor state; it does
// not close the underlying reader.
func decompressReader(reader io.Reader, compression CompressionType) (io.Reader, func() error, error) {
	switch compression {
	case CompressionNone:
		return reader, func() error { return nil }, nil

	case CompressionGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case CompressionBZ2:
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(reader), func() error { return nil }, nil

	case CompressionXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		// xz.Reader doesn't have a Close method
		return xzReader, func() error { return nil }, nil

	case CompressionZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder.IOReadCloser(), func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression type for reading: %v", compression)
	}
}

// compressWriter wraps writer with a compressor for the compression
// type. The returned close function flushes and releases the compressor;
// it does not close the underlying writer. bzip2 has no encoder in the
// standard library and is rejected.
func compressWriter(writer io.Writer, compression CompressionType) (io.Writer, func() error, error) {
	switch compression {
	case CompressionNone:
		return writer, func() error { return nil }, nil

	case CompressionGZ:
		gzWriter := gzip.NewWriter(writer)
		return gzWriter, gzWriter.Close, nil

	case CompressionBZ2:
		return nil, nil, errors.New("bzip2 compression is not supported for writing")

	case CompressionXZ:
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, xzWriter.Close, nil

	case CompressionZSTD:
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, zstdWriter.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression type for writing: %v", compression)
	}
}
