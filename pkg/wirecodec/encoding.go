package wirecodec

import (
	"encoding/json"

	"github.com/samber/lo"

	"github.com/go-ctap/webauthnwire/pkg/base64url"
	"github.com/go-ctap/webauthnwire/pkg/webauthntypes"
)

// EncodeRegistrationOptions renders registration options as wire JSON.
// Byte fields become unpadded URL-safe base64 text; absent optionals are
// omitted, never emitted as null.
func EncodeRegistrationOptions(o *webauthntypes.RegistrationOptions) ([]byte, error) {
	w := registrationOptionsWire{
		Challenge: lo.ToPtr(base64url.Encode(o.Challenge)),
		RelyingParty: &rpEntityWire{
			ID:   o.RelyingParty.ID,
			Name: o.RelyingParty.Name,
		},
		User: &userEntityWire{
			ID:          lo.ToPtr(base64url.Encode(o.User.ID)),
			Name:        o.User.Name,
			DisplayName: o.User.DisplayName,
		},
		PubKeyCredParams: lo.Map(o.CredentialParameters, func(p webauthntypes.CredentialParameters, _ int) credentialParametersWire {
			return credentialParametersWire{
				Type: string(p.Type),
				Alg:  int64(p.Algorithm),
			}
		}),
		Timeout: o.Timeout.ToPointer(),
	}
	if o.Attestation != "" {
		w.Attestation = lo.ToPtr(string(o.Attestation))
	}

	return json.Marshal(w)
}

// EncodeRequestOptions renders authentication options as wire JSON.
func EncodeRequestOptions(o *webauthntypes.RequestOptions) ([]byte, error) {
	w := requestOptionsWire{
		Challenge:      lo.ToPtr(base64url.Encode(o.Challenge)),
		Timeout:        o.Timeout.ToPointer(),
		RelyingPartyID: o.RelyingPartyID.ToPointer(),
		AllowCredentials: lo.Map(o.AllowCredentials, func(c webauthntypes.CredentialDescriptor, _ int) credentialDescriptorWire {
			return credentialDescriptorWire{
				Type: string(c.Type),
				ID:   lo.ToPtr(base64url.Encode(c.ID)),
				Transports: lo.Map(c.Transports, func(t webauthntypes.AuthenticatorTransport, _ int) string {
					return string(t)
				}),
			}
		}),
	}
	if uv, ok := o.UserVerification.Get(); ok {
		w.UserVerification = lo.ToPtr(string(uv))
	}

	return json.Marshal(w)
}

// EncodeRegistrationCredential renders a registration credential as wire
// JSON. The id field is emitted as-is; rawId is re-encoded from the raw
// bytes.
func EncodeRegistrationCredential(c *webauthntypes.RegistrationCredential) ([]byte, error) {
	w := registrationCredentialWire{
		ID:    lo.ToPtr(c.ID),
		Type:  c.Type,
		RawID: lo.ToPtr(base64url.Encode(c.RawID)),
		Response: &attestationResponseWire{
			ClientDataJSON:    lo.ToPtr(base64url.Encode(c.Response.ClientDataJSON)),
			AttestationObject: lo.ToPtr(base64url.Encode(c.Response.AttestationObject)),
		},
	}

	return json.Marshal(w)
}

// EncodeAuthenticationCredential renders an authentication credential as
// wire JSON. Absent userHandle and attestationObject are omitted.
func EncodeAuthenticationCredential(c *webauthntypes.AuthenticationCredential) ([]byte, error) {
	w := authenticationCredentialWire{
		ID:    lo.ToPtr(c.ID),
		Type:  c.Type,
		RawID: lo.ToPtr(base64url.Encode(c.RawID)),
		Response: &assertionResponseWire{
			ClientDataJSON:    lo.ToPtr(base64url.Encode(c.Response.ClientDataJSON)),
			AuthenticatorData: lo.ToPtr(base64url.Encode(c.Response.AuthenticatorData)),
			Signature:         lo.ToPtr(base64url.Encode(c.Response.Signature)),
			UserHandle:        base64url.EncodeOption(c.Response.UserHandle).ToPointer(),
			AttestationObject: base64url.EncodeOption(c.Response.AttestationObject).ToPointer(),
		},
		AuthenticatorAttachment: c.AuthenticatorAttachment.ToPointer(),
	}

	return json.Marshal(w)
}
