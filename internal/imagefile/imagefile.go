// Package imagefile measures and checksums the disc image the external tool
// produced. It is deliberately separate from the log scanning in
// internal/dump: the image is binary, the logs are text, and only the size
// feeds back into metadata extraction.
package imagefile

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// Info describes the disc image on disk.
type Info struct {
	Path      string
	SizeBytes int64
}

// Measure stats the image file and returns its size.
func Measure(path string) (Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat image: %w", err)
	}
	if stat.IsDir() {
		return Info{}, fmt.Errorf("stat image: %s is a directory", path)
	}
	return Info{Path: path, SizeBytes: stat.Size()}, nil
}

// Digests holds the archival checksums of a disc image, hex encoded.
type Digests struct {
	CRC32 string
	MD5   string
	SHA1  string
}

// Digest computes CRC32, MD5, and SHA-1 of the image in a single streaming
// read.
func Digest(path string) (Digests, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digests{}, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	crcHasher := crc32.NewIEEE()
	md5Hasher := md5.New()
	sha1Hasher := sha1.New()
	if _, err := io.Copy(io.MultiWriter(crcHasher, md5Hasher, sha1Hasher), file); err != nil {
		return Digests{}, fmt.Errorf("read image: %w", err)
	}

	return Digests{
		CRC32: hex.EncodeToString(crcHasher.Sum(nil)),
		MD5:   hex.EncodeToString(md5Hasher.Sum(nil)),
		SHA1:  hex.EncodeToString(sha1Hasher.Sum(nil)),
	}, nil
}
