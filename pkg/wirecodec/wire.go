// Package wirecodec translates the ceremony records in pkg/webauthntypes to
// and from their browser-facing JSON wire form. Every binary field is
// carried as unpadded URL-safe base64 text on the wire and as raw bytes in
// the records; decode failures are reported with the exact field path.
package wirecodec

import "github.com/go-ctap/webauthnwire/pkg/base64url"

// The wire structs below are the per-record mapping tables: each one
// enumerates the exact JSON keys of a record type, with base64url.URLBase64
// marking the byte-field subset. Pointer fields distinguish an absent key
// from a present zero value; a JSON null decodes like an absent key.

type rpEntityWire struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type userEntityWire struct {
	ID          *base64url.URLBase64 `json:"id"`
	Name        string               `json:"name"`
	DisplayName string               `json:"displayName"`
}

type credentialParametersWire struct {
	Type string `json:"type"`
	Alg  int64  `json:"alg"`
}

type registrationOptionsWire struct {
	Challenge        *base64url.URLBase64       `json:"challenge"`
	RelyingParty     *rpEntityWire              `json:"rp"`
	User             *userEntityWire            `json:"user"`
	PubKeyCredParams []credentialParametersWire `json:"pubKeyCredParams"`
	Timeout          *uint32                    `json:"timeout,omitempty"`
	Attestation      *string                    `json:"attestation,omitempty"`
}

type credentialDescriptorWire struct {
	Type       string               `json:"type"`
	ID         *base64url.URLBase64 `json:"id"`
	Transports []string             `json:"transports,omitempty"`
}

type requestOptionsWire struct {
	Challenge        *base64url.URLBase64       `json:"challenge"`
	Timeout          *uint32                    `json:"timeout,omitempty"`
	RelyingPartyID   *string                    `json:"rpId,omitempty"`
	AllowCredentials []credentialDescriptorWire `json:"allowCredentials,omitempty"`
	UserVerification *string                    `json:"userVerification,omitempty"`
}

type attestationResponseWire struct {
	ClientDataJSON    *base64url.URLBase64 `json:"clientDataJSON"`
	AttestationObject *base64url.URLBase64 `json:"attestationObject"`
}

type registrationCredentialWire struct {
	ID       *base64url.URLBase64     `json:"id"`
	Type     string                   `json:"type"`
	RawID    *base64url.URLBase64     `json:"rawId"`
	Response *attestationResponseWire `json:"response"`
}

type assertionResponseWire struct {
	ClientDataJSON    *base64url.URLBase64 `json:"clientDataJSON"`
	AuthenticatorData *base64url.URLBase64 `json:"authenticatorData"`
	Signature         *base64url.URLBase64 `json:"signature"`
	UserHandle        *base64url.URLBase64 `json:"userHandle,omitempty"`
	AttestationObject *base64url.URLBase64 `json:"attestationObject,omitempty"`
}

type authenticationCredentialWire struct {
	ID                      *base64url.URLBase64   `json:"id"`
	Type                    string                 `json:"type"`
	RawID                   *base64url.URLBase64   `json:"rawId"`
	Response                *assertionResponseWire `json:"response"`
	AuthenticatorAttachment *string                `json:"authenticatorAttachment,omitempty"`
}
