package core

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// resultDigest is the canonical form of an auction result used for hashing.
// Fields are pre-formatted to strings so the digest does not depend on how
// the caller's identifier and value types encode.
type resultDigest struct {
	Winners  []digestEntry `cbor:"winners"`
	Payments []digestEntry `cbor:"payments"`
	Welfare  string        `cbor:"welfare"`
}

type digestEntry struct {
	Bidder string `cbor:"bidder"`
	Amount string `cbor:"amount"`
}

// ComputeResultHash returns a SHA-256 hex digest over a canonical CBOR
// encoding of the result, so independently computed outcomes can be compared
// byte-for-byte in audit trails. Winners contribute their bidder identity
// and valuation in winning order; payments contribute bidder and amount.
// ReserveRejected bids are not part of the digest.
func ComputeResultHash[ID comparable, G comparable, V Value[V]](result *AuctionResult[ID, G, V]) (string, error) {
	digest := resultDigest{
		Winners:  make([]digestEntry, 0, len(result.WinningBids)),
		Payments: make([]digestEntry, 0, len(result.Payments)),
		Welfare:  fmt.Sprintf("%v", result.Welfare),
	}
	for _, b := range result.WinningBids {
		digest.Winners = append(digest.Winners, digestEntry{
			Bidder: fmt.Sprintf("%v", b.BidderID()),
			Amount: fmt.Sprintf("%v", b.Valuation()),
		})
	}
	for _, p := range result.Payments {
		digest.Payments = append(digest.Payments, digestEntry{
			Bidder: fmt.Sprintf("%v", p.Bidder),
			Amount: fmt.Sprintf("%v", p.Amount),
		})
	}

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return "", fmt.Errorf("building canonical encoder: %w", err)
	}
	encoded, err := encMode.Marshal(digest)
	if err != nil {
		return "", fmt.Errorf("encoding result digest: %w", err)
	}

	hash := sha256.Sum256(encoded)
	return fmt.Sprintf("%x", hash), nil
}
