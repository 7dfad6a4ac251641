package tablesql

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestCompressionForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		want     CompressionType
		wantPath string
	}{
		{path: "data.csv", want: CompressionNone, wantPath: "data.csv"},
		{path: "data.csv.gz", want: CompressionGZ, wantPath: "data.csv"},
		{path: "data.csv.bz2", want: CompressionBZ2, wantPath: "data.csv"},
		{path: "data.csv.xz", want: CompressionXZ, wantPath: "data.csv"},
		{path: "data.csv.zst", want: CompressionZSTD, wantPath: "data.csv"},
		{path: "DATA.CSV.GZ", want: CompressionGZ, wantPath: "DATA.CSV"},
		{path: "dir/archive.ZST", want: CompressionZSTD, wantPath: "dir/archive"},
		{path: "noext", want: CompressionNone, wantPath: "noext"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, gotPath := compressionForPath(tt.path)
			if got != tt.want {
				t.Errorf("compressionForPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if gotPath != tt.wantPath {
				t.Errorf("compressionForPath(%q) path = %q, want %q", tt.path, gotPath, tt.wantPath)
			}
		})
	}
}

func TestCompressionType_Extension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		compression CompressionType
		want        string
	}{
		{compression: CompressionNone, want: ""},
		{compression: CompressionGZ, want: ".gz"},
		{compression: CompressionBZ2, want: ".bz2"},
		{compression: CompressionXZ, want: ".xz"},
		{compression: CompressionZSTD, want: ".zst"},
	}

	for _, tt := range tests {
		if got := tt.compression.Extension(); got != tt.want {
			t.Errorf("Extension() = %q, want %q", got, tt.want)
		}
	}
}

func TestCompressionRoundTrip(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat("county,total\nAlameda,125\n", 200)

	tests := []struct {
		name        string
		compression CompressionType
	}{
		{name: "none", compression: CompressionNone},
		{name: "gzip", compression: CompressionGZ},
		{name: "xz", compression: CompressionXZ},
		{name: "zstd", compression: CompressionZSTD},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			writer, closeWriter, err := compressWriter(&buf, tt.compression)
			if err != nil {
				t.Fatalf("compressWriter() error = %v", err)
			}
			if _, err := io.WriteString(writer, payload); err != nil {
				t.Fatalf("write error = %v", err)
			}
			if err := closeWriter(); err != nil {
				t.Fatalf("close error = %v", err)
			}

			reader, closeReader, err := decompressReader(&buf, tt.compression)
			if err != nil {
				t.Fatalf("decompressReader() error = %v", err)
			}
			got, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("read error = %v", err)
			}
			if err := closeReader(); err != nil {
				t.Fatalf("reader close error = %v", err)
			}

			if string(got) != payload {
				t.Errorf("round trip changed the payload: got %d bytes, want %d", len(got), len(payload))
			}
		})
	}
}

func TestCompressWriter_bzip2(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, _, err := compressWriter(&buf, CompressionBZ2)
	if err == nil {
		t.Fatal("expected an error for bzip2 writing")
	}
	if !strings.Contains(err.Error(), "not supported for writing") {
		t.Errorf("error = %v, want a not-supported message", err)
	}
}

func TestDecompressReader_bzip2(t *testing.T) {
	t.Parallel()

	// The stdlib bzip2 reader reports corruption on the first read, not
	// at construction time.
	reader, closeReader, err := decompressReader(strings.NewReader("not bzip2 data"), CompressionBZ2)
	if err != nil {
		t.Fatalf("decompressReader() error = %v", err)
	}
	defer func() {
		_ = closeReader()
	}()

	if _, err := io.ReadAll(reader); err == nil {
		t.Error("expected a read error for corrupt bzip2 data")
	}
}

func TestDecompressReader_corruptGzip(t *testing.T) {
	t.Parallel()

	_, _, err := decompressReader(strings.NewReader("not gzip data"), CompressionGZ)
	if err == nil {
		t.Fatal("expected an error for corrupt gzip data")
	}
	if !strings.Contains(err.Error(), "gzip") {
		t.Errorf("error = %v, want a gzip message", err)
	}
}
