package webauthntypes

import (
	"github.com/samber/mo"

	"github.com/go-ctap/webauthnwire/pkg/base64url"
)

// RpEntity is used to supply Relying Party attributes when creating a new credential.
// https://www.w3.org/TR/webauthn-3/#dictdef-publickeycredentialrpentity
type RpEntity struct {
	ID   string
	Name string
}

// UserEntity is used to supply user account attributes when creating a new
// credential. ID is an opaque user handle and must not carry personally
// identifying information.
// https://www.w3.org/TR/webauthn-3/#dictdef-publickeycredentialuserentity
type UserEntity struct {
	ID          []byte
	Name        string
	DisplayName string
}

// CredentialParameters is used to supply additional parameters when creating a new credential.
// https://www.w3.org/TR/webauthn-3/#dictdef-publickeycredentialparameters
type CredentialParameters struct {
	Type      PublicKeyCredentialType
	Algorithm COSEAlgorithm
}

// CredentialDescriptor identifies a specific public key credential.
// https://www.w3.org/TR/webauthn-3/#dictdef-publickeycredentialdescriptor
type CredentialDescriptor struct {
	Type       PublicKeyCredentialType
	ID         []byte
	Transports []AuthenticatorTransport
}

// RegistrationOptions are the relying party's inputs to a registration
// ceremony. CredentialParameters is ordered most-to-least preferred.
// Timeout is a hint in milliseconds, passed through, never enforced here.
// https://www.w3.org/TR/webauthn-3/#dictdef-publickeycredentialcreationoptions
type RegistrationOptions struct {
	Challenge            []byte
	RelyingParty         RpEntity
	User                 UserEntity
	CredentialParameters []CredentialParameters
	Timeout              mo.Option[uint32]
	Attestation          AttestationPreference
}

// RequestOptions are the relying party's inputs to an authentication
// ceremony. AllowCredentials is ordered most-to-least preferred; a nil slice
// means the key is absent on the wire.
// https://www.w3.org/TR/webauthn-3/#dictdef-publickeycredentialrequestoptions
type RequestOptions struct {
	Challenge        []byte
	Timeout          mo.Option[uint32]
	RelyingPartyID   mo.Option[string]
	AllowCredentials []CredentialDescriptor
	UserVerification mo.Option[UserVerificationRequirement]
}

// AttestationResponse carries the authenticator's output of a registration
// ceremony. Both fields are opaque byte sequences at this layer; attestation
// statement verification is the caller's concern.
// https://www.w3.org/TR/webauthn-3/#authenticatorattestationresponse
type AttestationResponse struct {
	ClientDataJSON    []byte
	AttestationObject []byte
}

// RegistrationCredential is the credential returned by the browser after a
// registration ceremony. RawID holds the same bytes that ID carries in wire
// form; the codec does not cross-check them unless asked to.
// https://www.w3.org/TR/webauthn-3/#iface-pkcredential
type RegistrationCredential struct {
	ID       base64url.URLBase64
	Type     string
	RawID    []byte
	Response AttestationResponse
}

// AssertionResponse carries the authenticator's output of an authentication
// ceremony. UserHandle and AttestationObject are optional on the wire and
// stay distinct from present-but-empty when absent.
// https://www.w3.org/TR/webauthn-3/#authenticatorassertionresponse
type AssertionResponse struct {
	ClientDataJSON    []byte
	AuthenticatorData []byte
	Signature         []byte
	UserHandle        mo.Option[[]byte]
	AttestationObject mo.Option[[]byte]
}

// AuthenticationCredential is the credential returned by the browser after
// an authentication ceremony.
// https://www.w3.org/TR/webauthn-3/#iface-pkcredential
type AuthenticationCredential struct {
	ID                      base64url.URLBase64
	Type                    string
	RawID                   []byte
	Response                AssertionResponse
	AuthenticatorAttachment mo.Option[string]
}
