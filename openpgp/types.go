// This is free and unencumbered software released into the public domain.

package openpgp

// Public-key algorithm ids, RFC 4880 §9.1.
const (
	PKRSA     = 1
	PKElGamal = 16
	PKDSA     = 17
)

// Symmetric-key algorithm ids, RFC 4880 §9.2.
const (
	Cipher3DES   = 2
	CipherCAST5  = 3
	CipherAES128 = 7
	CipherAES192 = 8
	CipherAES256 = 9
)

// Hash algorithm ids, RFC 4880 §9.4.
const (
	HashMD5       = 1
	HashSHA1      = 2
	HashRIPEMD160 = 3
	HashSHA256    = 8
)

// Packet tags, RFC 4880 §4.3.
const (
	tagPubKeyEnc    = 1
	tagSignature    = 2
	tagSymKeyEnc    = 3
	tagOnePassSig   = 4
	tagSecretKey    = 5
	tagPublicKey    = 6
	tagCompressed   = 8
	tagEncrypted    = 9
	tagMarker       = 10
	tagPlaintext    = 11
	tagEncryptedMDC = 18
	tagMDC          = 19
)

// Flags is the configuration word from spec.md §6; each Context carries
// its own.
type Flags uint32

// MandatoryMDC, when set, fails decryption of any message lacking an MDC;
// when clear, such a message is decrypted without an integrity check.
const MandatoryMDC Flags = 1 << 0

// KeyID is a 64-bit OpenPGP key identifier stored as its wire halves.
type KeyID struct {
	High uint32
	Low  uint32
}

// KeyInfo identifies a key without carrying its material.
type KeyInfo struct {
	ID   KeyID
	Algo int
}

// MPI is a borrowed view of an OpenPGP multi-precision integer: a bit
// length and a big-endian magnitude slice aliasing its owning buffer.
// An MPI must not outlive the buffer it was read from.
type MPI struct {
	Bits  uint16
	Bytes []byte
}

// ByteLen returns ceil(Bits/8), the expected length of Bytes.
func (m MPI) ByteLen() int {
	return int((m.Bits + 7) / 8)
}

// PublicKeyRecord is one compiled-in secret-key table entry: spec.md §3
// "Public key record (compile-time table entry)". Despite the name it
// carries full secret material (n, e, d, p, q, u) for RSA; the table is
// the compiled-in replacement for an on-disk keyring.
type PublicKeyRecord struct {
	Algo int
	ID   KeyID
	MPIs []MPI // RSA: n, e, d, p, q, u
}

// RSA MPI index positions within PublicKeyRecord.MPIs.
const (
	mpiN = 0
	mpiE = 1
	mpiD = 2
	mpiP = 3
	mpiQ = 4
	mpiU = 5
)

// MessageType is the result of classifying a packet stream (spec.md §4.8).
type MessageType int

const (
	Unknown MessageType = iota
	Encrypted
	Signed
	KeyData
	Plaintext
	Invalid
)

func (t MessageType) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case Encrypted:
		return "encrypted"
	case Signed:
		return "signed"
	case KeyData:
		return "keydata"
	case Plaintext:
		return "plaintext"
	case Invalid:
		return "invalid"
	default:
		return "invalid"
	}
}
