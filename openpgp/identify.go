// This is free and unencumbered software released into the public domain.

package openpgp

// classify walks buf's packets and returns the MessageType decided by
// the first packet tag that settles it, per spec.md §4.8, grounded on
// original_source/src/pktparser.c's _tgpg_identify_message.
func classify(buf []byte) (MessageType, error) {
	r := newPacketReader(buf)
	for {
		if r.done() {
			return 0, newErr(ErrNoData)
		}
		pkt, err := r.next()
		if err != nil {
			return 0, err
		}
		switch pkt.tag {
		case tagMarker:
			continue
		case tagSymKeyEnc:
			// symmetric-only messages aren't supported; keep scanning in
			// case a PubKeyEnc packet for this message follows.
			continue
		case tagPubKeyEnc:
			return Encrypted, nil
		case tagOnePassSig, tagSignature:
			return Signed, nil
		case tagPublicKey, tagSecretKey:
			return KeyData, nil
		case tagEncrypted:
			return 0, newErr(ErrNotImplemented)
		case tagPlaintext, tagCompressed:
			return 0, newErr(ErrNotImplemented)
		default:
			return 0, newErr(ErrUnexpectedPacket)
		}
	}
}

// Identify classifies an OpenPGP message (spec.md §4.8/§4.11). It
// collapses NoData to Unknown and UnexpectedPacket to Invalid, both
// treated as successful classifications; any other error (malformed
// packet framing, unimplemented features) is returned as an error.
func Identify(buf []byte) (MessageType, error) {
	mt, err := classify(buf)
	if err == nil {
		return mt, nil
	}
	switch {
	case Is(err, ErrNoData):
		return Unknown, nil
	case Is(err, ErrUnexpectedPacket):
		return Invalid, nil
	default:
		return Unknown, err
	}
}
