// Package webauthntypes holds the typed records exchanged between a relying
// party and a browser during WebAuthn registration and authentication
// ceremonies, together with the closed enumerations embedded in them.
//
// All records are immutable value types: create, encode or decode, discard.
// Binary fields are raw byte sequences here; their wire rendering as
// unpadded URL-safe base64 lives in pkg/wirecodec.
package webauthntypes

import (
	"crypto"
	"strconv"

	// Make the digests returned by COSEAlgorithm.Hash available to callers.
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/ldclabs/cose/iana"
	"github.com/ldclabs/cose/key"
	"github.com/samber/lo"
)

type (
	// PublicKeyCredentialType defines the valid credential types.
	// https://www.w3.org/TR/webauthn-3/#enumdef-publickeycredentialtype
	PublicKeyCredentialType string
	// AuthenticatorTransport defines hints as to how clients might communicate
	// with a particular authenticator in order to obtain an assertion for a specific credential.
	// https://www.w3.org/TR/webauthn-3/#enumdef-authenticatortransport
	AuthenticatorTransport string
	// UserVerificationRequirement describes the relying party's user
	// verification requirements for a ceremony.
	// https://www.w3.org/TR/webauthn-3/#enumdef-userverificationrequirement
	UserVerificationRequirement string
	// AttestationPreference expresses the relying party's preference for
	// attestation conveyance.
	// https://www.w3.org/TR/webauthn-3/#enum-attestation-convey
	AttestationPreference string
)

const (
	PublicKeyCredentialTypePublicKey PublicKeyCredentialType = "public-key"
)

const (
	AuthenticatorTransportUSB      AuthenticatorTransport = "usb"
	AuthenticatorTransportNFC      AuthenticatorTransport = "nfc"
	AuthenticatorTransportBLE      AuthenticatorTransport = "ble"
	AuthenticatorTransportHybrid   AuthenticatorTransport = "hybrid"
	AuthenticatorTransportInternal AuthenticatorTransport = "internal"
)

const (
	UserVerificationRequired    UserVerificationRequirement = "required"
	UserVerificationPreferred   UserVerificationRequirement = "preferred"
	UserVerificationDiscouraged UserVerificationRequirement = "discouraged"
)

const (
	AttestationPreferenceNone AttestationPreference = "none"
)

// Registered reports whether t is part of the closed credential type set.
func (t PublicKeyCredentialType) Registered() bool {
	return t == PublicKeyCredentialTypePublicKey
}

// Registered reports whether t is part of the closed transport set.
func (t AuthenticatorTransport) Registered() bool {
	switch t {
	case AuthenticatorTransportUSB,
		AuthenticatorTransportNFC,
		AuthenticatorTransportBLE,
		AuthenticatorTransportHybrid,
		AuthenticatorTransportInternal:
		return true
	}

	return false
}

// Registered reports whether r is part of the closed requirement set.
func (r UserVerificationRequirement) Registered() bool {
	switch r {
	case UserVerificationRequired, UserVerificationPreferred, UserVerificationDiscouraged:
		return true
	}

	return false
}

// Registered reports whether p is part of the closed preference set.
func (p AttestationPreference) Registered() bool {
	return p == AttestationPreferenceNone
}

// COSEAlgorithm is a number identifying a cryptographic algorithm from the
// IANA COSE registry. It is transmitted as a signed integer.
// https://www.w3.org/TR/webauthn-3/#typedefdef-cosealgorithmidentifier
type COSEAlgorithm int

const (
	COSEAlgorithmES256 = COSEAlgorithm(iana.AlgorithmES256)
	COSEAlgorithmES384 = COSEAlgorithm(iana.AlgorithmES384)
	COSEAlgorithmES512 = COSEAlgorithm(iana.AlgorithmES512)
)

func (a COSEAlgorithm) String() string {
	switch a {
	case COSEAlgorithmES256:
		return "ES256"
	case COSEAlgorithmES384:
		return "ES384"
	case COSEAlgorithmES512:
		return "ES512"
	}

	return "COSEAlgorithm(" + strconv.Itoa(int(a)) + ")"
}

// Registered reports whether a is part of the supported algorithm set.
func (a COSEAlgorithm) Registered() bool {
	switch a {
	case COSEAlgorithmES256, COSEAlgorithmES384, COSEAlgorithmES512:
		return true
	}

	return false
}

// Hash returns the digest function bound to the algorithm, for use by
// signature-verification collaborators. This is the only place algorithm
// identifiers are bound to hash choices. ok is false outside the supported
// set.
func (a COSEAlgorithm) Hash() (h crypto.Hash, ok bool) {
	switch a {
	case COSEAlgorithmES256:
		return crypto.SHA256, true
	case COSEAlgorithmES384:
		return crypto.SHA384, true
	case COSEAlgorithmES512:
		return crypto.SHA512, true
	}

	return 0, false
}

// Alg bridges to the ldclabs/cose algorithm type for callers verifying
// signatures against a parsed COSE credential public key.
func (a COSEAlgorithm) Alg() key.Alg {
	return key.Alg(a)
}

// SupportedAlgorithms returns the closed set of supported algorithms,
// most-to-least preferred. The slice is freshly allocated on every call.
func SupportedAlgorithms() []COSEAlgorithm {
	return []COSEAlgorithm{COSEAlgorithmES256, COSEAlgorithmES384, COSEAlgorithmES512}
}

// DefaultCredentialParameters returns credential parameters for every
// supported algorithm, most-to-least preferred.
func DefaultCredentialParameters() []CredentialParameters {
	return lo.Map(SupportedAlgorithms(), func(a COSEAlgorithm, _ int) CredentialParameters {
		return CredentialParameters{
			Type:      PublicKeyCredentialTypePublicKey,
			Algorithm: a,
		}
	})
}
