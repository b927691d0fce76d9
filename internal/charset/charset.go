// Copyright 2025 Plaintab Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package charset turns a raw byte stream into a UTF-8 character stream
// decoded under a caller-declared encoding.
//
// The encoding name is resolved through the IANA character set registry, so
// the usual aliases ("utf-8", "latin1", "iso-8859-1", "windows-1252", ...)
// all work. Decoding is strict: a byte sequence that is invalid under the
// declared encoding fails the read with ErrDecodeFailure instead of being
// silently replaced. The engine never re-guesses the encoding.
package charset

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	pterrors "github.com/plaintabhq/plaintab/internal/errors"
)

// errUndecodable is returned by the validator when the decoded stream
// contains a replacement rune, meaning the source bytes were not valid for
// the declared encoding.
var errUndecodable = fmt.Errorf("byte sequence is not valid for the declared encoding: %w", pterrors.ErrDecodeFailure)

// NewReader wraps r so that its bytes are decoded from the named encoding
// into UTF-8. A leading byte order mark is honored and stripped. Unknown
// encoding names fail with ErrUnknownEncoding before any byte is read.
//
// Reads from the returned reader fail with an error wrapping
// ErrDecodeFailure at the first byte sequence that cannot be decoded.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}

	// The x/text decoders substitute U+FFFD for undecodable input rather
	// than reporting an error. The trailing validator turns any replacement
	// rune into a hard decode failure, which makes the pipeline strict.
	// BOMOverride switches to the BOM-indicated Unicode decoder when the
	// stream starts with a BOM and consumes the BOM itself.
	t := transform.Chain(unicode.BOMOverride(enc.NewDecoder()), validator{})
	return transform.NewReader(r, t), nil
}

// lookup resolves an encoding name via the IANA index.
func lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "utf-8"
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("encoding %q: %w", name, pterrors.ErrUnknownEncoding)
	}
	return enc, nil
}

// validator passes valid UTF-8 through unchanged and fails the stream on the
// first replacement rune or invalid byte. Decoders upstream emit U+FFFD for
// undecodable input, so a replacement rune here means the source bytes did
// not match the declared encoding.
type validator struct{}

// Reset implements transform.Transformer.
func (validator) Reset() {}

// Transform implements transform.Transformer.
func (validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]

		var size int
		if c < utf8.RuneSelf {
			size = 1
		} else {
			r, s := utf8.DecodeRune(src[nSrc:])
			if r == utf8.RuneError {
				if s <= 1 {
					if !atEOF && !utf8.FullRune(src[nSrc:]) {
						err = transform.ErrShortSrc
						break
					}
					err = errUndecodable
					break
				}
				// A decoded replacement rune: the upstream decoder hit
				// bytes it could not map.
				err = errUndecodable
				break
			}
			size = s
		}

		if nDst+size > len(dst) {
			err = transform.ErrShortDst
			break
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, err
}
