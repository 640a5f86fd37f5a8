// Package kdf assembles package smix's memory-hard core into full scrypt:
// the PBKDF2-HMAC-SHA-256 pre- and post-expansion, and the p-way
// parallelism across independent elements, both of which smix deliberately
// leaves to its callers.
package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/BioTurboNick/Skryptonite/smix"
	"github.com/BioTurboNick/Skryptonite/utils"
)

const maxInt = int(^uint(0) >> 1)

// Key derives a key of length keyLen from password and salt using scrypt.
//
// N is the CPU/memory cost parameter and must be a power of two greater
// than 1. r is the block size parameter. p is the parallelization
// parameter. r and p must satisfy r*p < 2^30, matching the classic scrypt
// implementation's bound, and the buffer sizes 128*r*p, 256*r and 128*r*N
// bytes must each fit in an int.
func Key(password, salt []byte, N, r, p, keyLen int) ([]byte, error) {
	if N <= 1 || !utils.IsPowerOfTwo(uint64(N)) || N > 0xFFFFFFFF {
		return nil, ErrInvalidN
	}
	if r <= 0 {
		return nil, ErrInvalidR
	}
	if p <= 0 {
		return nil, ErrInvalidP
	}
	if keyLen <= 0 {
		return nil, ErrInvalidKeyLen
	}
	if uint64(r)*uint64(p) >= 1<<30 || r > maxInt/128/p || r > maxInt/256 || N > maxInt/128/r {
		return nil, ErrParametersTooLarge
	}

	utils.Debugf("kdf", "deriving key: N=%d r=%d p=%d isa=%s", N, r, p, smix.SelectedInstructionSet())

	b := pbkdf2.Key(password, salt, 1, p*128*r, sha256.New)

	err := utils.SplitWork(0, uint64(p),
		func(workIndex uint64, _ int) error {
			return smix.SMixElement(b, int(workIndex), p, N)
		},
		func(_, _ int) error { return nil },
	)
	if err != nil {
		return nil, err
	}

	derivedKey := pbkdf2.Key(password, b, 1, keyLen, sha256.New)

	return derivedKey, nil
}
