package utils

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/voxelsplace/islands/config"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// readInput returns the contents of path, decompressing zstd frames.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	logDebug("%s: %d bytes zstd -> %d bytes", path, len(data), len(out))
	return out, nil
}

// writeOutput writes data to path, zstd-compressed when the path ends in
// .zst or the export config asks for it.
func writeOutput(path string, data []byte, cfg config.ExportConfig) error {
	if strings.HasSuffix(path, ".zst") || cfg.Compression == "zstd" {
		level := zstd.SpeedDefault
		if cfg.ZstdLevel > 0 {
			level = zstd.EncoderLevelFromZstd(cfg.ZstdLevel)
		}
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
		if err != nil {
			return err
		}
		compressed := enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return err
		}
		logDebug("%s: %d bytes -> %d bytes zstd", path, len(data), len(compressed))
		data = compressed
	}
	return os.WriteFile(path, data, 0o644)
}
