// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes.
// It knows nothing about users or storage.
//
// Hashes are self-describing PHC strings:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// so a hash produced with one set of parameters can still be verified after
// the parameters are changed.
type PasswordHasher interface {
	// Hash derives a new hash with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value is an error, a mismatch is not.
	Verify(password, encoded string) (bool, error)
}
