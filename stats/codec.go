package stats

import (
	"bytes"
	"fmt"
	"math/big"

	bin "github.com/gagliardetto/binary"

	"arena-mpc/shared"
)

// EncodedLen is the canonical width of an encoded record: four u64 words.
const EncodedLen = 32

// Encode serializes the record as four 8-byte little-endian unsigned
// integers at offsets 0, 8, 16, 24.
func Encode(s BattleStats) ([EncodedLen]byte, error) {
	var out [EncodedLen]byte

	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	for _, v := range []uint64{s.Strength, s.Agility, s.Endurance, s.Intelligence} {
		if err := enc.WriteUint64(v, bin.LE); err != nil {
			return out, shared.Wrap(shared.KindEncryptionFailed, err, "encoding stats record")
		}
	}
	if buf.Len() != EncodedLen {
		return out, shared.Errorf(shared.KindEncryptionFailed,
			"encoded stats record is %d bytes, want %d", buf.Len(), EncodedLen)
	}

	copy(out[:], buf.Bytes())
	return out, nil
}

// Decode reads four little-endian u64 words back into a record. It is the
// exact inverse of Encode.
func Decode(buf [EncodedLen]byte) (BattleStats, error) {
	dec := bin.NewBorshDecoder(buf[:])

	var words [4]uint64
	for i := range words {
		v, err := dec.ReadUint64(bin.LE)
		if err != nil {
			return BattleStats{}, fmt.Errorf("decoding stats word %d: %w", i, err)
		}
		words[i] = v
	}

	return BattleStats{
		Strength:     words[0],
		Agility:      words[1],
		Endurance:    words[2],
		Intelligence: words[3],
	}, nil
}

// ToInteger interprets the whole 32-byte buffer as one little-endian
// 256-bit unsigned integer. The cipher primitive operates on integers,
// not byte buffers.
func ToInteger(buf [EncodedLen]byte) *big.Int {
	be := make([]byte, EncodedLen)
	for i := range buf {
		be[EncodedLen-1-i] = buf[i]
	}
	return new(big.Int).SetBytes(be)
}

// FromInteger is the inverse of ToInteger. Values wider than 256 bits are
// rejected.
func FromInteger(n *big.Int) ([EncodedLen]byte, error) {
	var out [EncodedLen]byte
	if n.Sign() < 0 || n.BitLen() > EncodedLen*8 {
		return out, fmt.Errorf("integer does not fit in %d bytes", EncodedLen)
	}
	be := n.Bytes()
	for i := range be {
		out[len(be)-1-i] = be[i]
	}
	return out, nil
}
