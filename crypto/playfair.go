// Package crypto contains Playfair encryption and decryption
package crypto

import (
	"fmt"
	"strings"

	"playfair-backend/models"
)

// alphabet is the reduced 25-letter alphabet used by the cipher; J is
// folded into I so the letters fit a 5 by 5 table.
const alphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// tableSize is the dimension of the Playfair square.
const tableSize = 5

// DefaultFiller separates doubled letters and completes a trailing
// unpaired letter. Both sides must use the same filler: it changes the
// ciphertext for any plaintext containing doubled letters.
const DefaultFiller = byte('X')

// Playfair holds the key-derived 5x5 substitution table. Instances are
// immutable after construction and safe for concurrent use.
type Playfair struct {
	key    string
	filler byte
	table  [tableSize][tableSize]byte
}

// NewPlayfair creates a cipher for the given key with the default filler.
func NewPlayfair(key string) *Playfair {
	return &Playfair{
		key:    key,
		filler: DefaultFiller,
		table:  buildTable(key),
	}
}

// NewPlayfairWithFiller creates a cipher with an explicit filler letter.
func NewPlayfairWithFiller(key string, filler byte) (*Playfair, error) {
	if err := ValidateFiller(filler); err != nil {
		return nil, err
	}
	if filler >= 'a' && filler <= 'z' {
		filler -= 'a' - 'A'
	}
	return &Playfair{
		key:    key,
		filler: filler,
		table:  buildTable(key),
	}, nil
}

// NewPlayfairFromConfig creates a cipher from a request-level config.
// An empty filler selects the default.
func NewPlayfairFromConfig(config *models.CipherConfig) (*Playfair, error) {
	if config.Filler == "" {
		return NewPlayfair(config.Key), nil
	}
	if len(config.Filler) != 1 {
		return nil, fmt.Errorf("filler must be a single letter, got %q", config.Filler)
	}
	return NewPlayfairWithFiller(config.Key, config.Filler[0])
}

// ValidateFiller validates if the letter is usable as a pair filler
func ValidateFiller(filler byte) error {
	if filler >= 'a' && filler <= 'z' {
		filler -= 'a' - 'A'
	}
	if filler == 'J' {
		return fmt.Errorf("filler letter J is not part of the reduced alphabet")
	}
	if filler < 'A' || filler > 'Z' {
		return fmt.Errorf("filler must be a letter, got %q", filler)
	}
	return nil
}

// normalize uppercases text, drops every character that is not a letter
// and folds J into I. The result contains table letters only.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		if c == 'J' {
			c = 'I'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// buildTable fills the 5x5 table with the deduplicated key letters first,
// then the remaining alphabet in order.
func buildTable(key string) [tableSize][tableSize]byte {
	var used [26]bool
	order := make([]byte, 0, len(alphabet))
	for _, c := range []byte(normalize(key) + alphabet) {
		if !used[c-'A'] {
			used[c-'A'] = true
			order = append(order, c)
		}
	}

	var table [tableSize][tableSize]byte
	for i, c := range order {
		table[i/tableSize][i%tableSize] = c
	}
	return table
}

// position returns the table coordinates of a letter. Input must already
// be normalized; a letter outside the table is a caller bug, not a
// runtime condition.
func (p *Playfair) position(letter byte) (int, int) {
	for row := 0; row < tableSize; row++ {
		for col := 0; col < tableSize; col++ {
			if p.table[row][col] == letter {
				return row, col
			}
		}
	}
	panic(fmt.Sprintf("crypto: letter %q is not in the Playfair table", letter))
}

// encryptPair substitutes one digraph:
// same row takes the letter to the right of each, same column the letter
// below each, otherwise each letter takes its partner's column.
func (p *Playfair) encryptPair(a, b byte) (byte, byte) {
	row1, col1 := p.position(a)
	row2, col2 := p.position(b)

	if row1 == row2 {
		return p.table[row1][(col1+1)%tableSize], p.table[row2][(col2+1)%tableSize]
	}
	if col1 == col2 {
		return p.table[(row1+1)%tableSize][col1], p.table[(row2+1)%tableSize][col2]
	}
	return p.table[row1][col2], p.table[row2][col1]
}

// decryptPair inverts encryptPair: left instead of right, above instead
// of below. The rectangle rule is its own inverse.
func (p *Playfair) decryptPair(a, b byte) (byte, byte) {
	row1, col1 := p.position(a)
	row2, col2 := p.position(b)

	if row1 == row2 {
		return p.table[row1][(col1+tableSize-1)%tableSize], p.table[row2][(col2+tableSize-1)%tableSize]
	}
	if col1 == col2 {
		return p.table[(row1+tableSize-1)%tableSize][col1], p.table[(row2+tableSize-1)%tableSize][col2]
	}
	return p.table[row1][col2], p.table[row2][col1]
}

// Encrypt normalizes the plaintext, splits it into digraphs and
// substitutes each pair. A doubled letter is paired with the filler
// instead of its twin, and a trailing unpaired letter is completed with
// the filler, so the output is always even-length.
func (p *Playfair) Encrypt(plaintext string) string {
	text := normalize(plaintext)

	var out strings.Builder
	out.Grow(len(text) + 2)
	for i := 0; i < len(text); {
		a := text[i]
		b := p.filler
		if i+1 < len(text) && text[i+1] != a {
			b = text[i+1]
			i += 2
		} else {
			i++
		}
		ca, cb := p.encryptPair(a, b)
		out.WriteByte(ca)
		out.WriteByte(cb)
	}
	return out.String()
}

// Decrypt substitutes each ciphertext digraph by the inverse rule.
// The input must be the even-length, uppercase letter pairs produced by
// Encrypt; anything else is rejected. Fillers, the J to I fold and
// stripped spaces are not reversed: the result is the normalized,
// filler-padded plaintext, not the original input.
func (p *Playfair) Decrypt(ciphertext string) (string, error) {
	if len(ciphertext)%2 != 0 {
		return "", fmt.Errorf("ciphertext length must be even, got %d", len(ciphertext))
	}
	for i := 0; i < len(ciphertext); i++ {
		c := ciphertext[i]
		if c < 'A' || c > 'Z' || c == 'J' {
			return "", fmt.Errorf("ciphertext contains %q at position %d, expected uppercase letters A-Z without J", c, i)
		}
	}

	var out strings.Builder
	out.Grow(len(ciphertext))
	for i := 0; i < len(ciphertext); i += 2 {
		a, b := p.decryptPair(ciphertext[i], ciphertext[i+1])
		out.WriteByte(a)
		out.WriteByte(b)
	}
	return out.String(), nil
}

// Key returns the passphrase the table was built from.
func (p *Playfair) Key() string {
	return p.key
}

// TableRows returns the table as five display strings of space-separated
// letters, top row first.
func (p *Playfair) TableRows() [tableSize]string {
	var rows [tableSize]string
	for i := 0; i < tableSize; i++ {
		var b strings.Builder
		for j := 0; j < tableSize; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(p.table[i][j])
		}
		rows[i] = b.String()
	}
	return rows
}

// String renders the key and the table for diagnostics.
func (p *Playfair) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "key: %s\n", p.key)
	b.WriteString("table:\n")
	for _, row := range p.TableRows() {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}
