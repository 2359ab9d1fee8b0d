// This is free and unencumbered software released into the public domain.

// Package openpgp implements a minimal OpenPGP (RFC 4880) core for
// decrypting and encrypting short messages addressed to a small,
// compiled-in set of RSA secret keys.
//
// This is not a general-purpose GPG replacement: there is no
// key-management UI, no signature verification, no web of trust, and no
// on-disk keyring. Secret key material is supplied by the caller as a
// KeyTable and is expected to be embedded in the binary at build time.
package openpgp
