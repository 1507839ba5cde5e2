// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram exports the expected interface for Salted Challenge
// Response Authentication Mechanism (SCRAM) hashing. For the
// corresponding implementation, check the adapter layer.
//
// Only hash generation is needed in the use cases layer: the database
// initialization use case has to set role passwords without sending
// plaintext passwords in the relevant DDL queries (so their possible
// logging is not a threat). Client and server side conversations of
// the SCRAM protocol itself are managed by the PostgreSQL server and
// its driver in the adapter layer.
package scram

// Hasher represents the expectations from a SCRAM hasher
// implementation which for a specific underlying hash function
// computes the storedKey and serverKey values whenever its Hash
// method is called. A PBKDF2 algorithm is computed in order to slow
// down a dictionary attack as detailed in RFC 5802.
type Hasher interface {
	// Hash computes a hash string following the standard scram hash
	// format, so it can be stored and used later for authentication:
	//
	//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
	//
	// The pass argument must be non-empty. The salt must contain a
	// base64 encoding of the desired salt bytes; if empty, a random
	// salt is generated instead. The iters must be at least 4096
	// (RFC 7677 recommends 15000 or more).
	Hash(pass, salt string, iters int) (string, error)
}
