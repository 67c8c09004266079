package wirecodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/samber/mo"

	"github.com/go-ctap/webauthnwire/pkg/base64url"
	"github.com/go-ctap/webauthnwire/pkg/webauthntypes"
)

// DecodeRegistrationOptions decodes the wire JSON of a registration
// ceremony's options.
func DecodeRegistrationOptions(data []byte, opts ...Option) (*webauthntypes.RegistrationOptions, error) {
	oo := NewOptions(opts...)

	rec, err := decodeRegistrationOptions(data)
	if err != nil {
		oo.Logger.Debug("registration options decode failed", "err", err)
		return nil, err
	}

	return rec, nil
}

func decodeRegistrationOptions(data []byte) (*webauthntypes.RegistrationOptions, error) {
	var w registrationOptionsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("wirecodec: %w", err)
	}

	challenge, err := decodeBytes("challenge", w.Challenge)
	if err != nil {
		return nil, err
	}

	if w.RelyingParty == nil {
		return nil, &FieldError{Field: "rp", Err: ErrMissingField}
	}

	user, err := decodeUserEntity("user", w.User)
	if err != nil {
		return nil, err
	}

	params := make([]webauthntypes.CredentialParameters, 0, len(w.PubKeyCredParams))
	for i, p := range w.PubKeyCredParams {
		alg := webauthntypes.COSEAlgorithm(p.Alg)
		if !alg.Registered() {
			return nil, &UnknownEnumError{
				Field: "pubKeyCredParams[" + strconv.Itoa(i) + "].alg",
				Raw:   strconv.FormatInt(p.Alg, 10),
			}
		}

		params = append(params, webauthntypes.CredentialParameters{
			Type:      webauthntypes.PublicKeyCredentialType(p.Type),
			Algorithm: alg,
		})
	}

	// Absent attestation means the W3C default.
	attestation := webauthntypes.AttestationPreferenceNone
	if w.Attestation != nil {
		attestation = webauthntypes.AttestationPreference(*w.Attestation)
		if !attestation.Registered() {
			return nil, &UnknownEnumError{Field: "attestation", Raw: *w.Attestation}
		}
	}

	return &webauthntypes.RegistrationOptions{
		Challenge: challenge,
		RelyingParty: webauthntypes.RpEntity{
			ID:   w.RelyingParty.ID,
			Name: w.RelyingParty.Name,
		},
		User:                 user,
		CredentialParameters: params,
		Timeout:              mo.PointerToOption(w.Timeout),
		Attestation:          attestation,
	}, nil
}

// DecodeRequestOptions decodes the wire JSON of an authentication
// ceremony's options.
func DecodeRequestOptions(data []byte, opts ...Option) (*webauthntypes.RequestOptions, error) {
	oo := NewOptions(opts...)

	rec, err := decodeRequestOptions(data)
	if err != nil {
		oo.Logger.Debug("request options decode failed", "err", err)
		return nil, err
	}

	return rec, nil
}

func decodeRequestOptions(data []byte) (*webauthntypes.RequestOptions, error) {
	var w requestOptionsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("wirecodec: %w", err)
	}

	challenge, err := decodeBytes("challenge", w.Challenge)
	if err != nil {
		return nil, err
	}

	var allowed []webauthntypes.CredentialDescriptor
	if w.AllowCredentials != nil {
		allowed = make([]webauthntypes.CredentialDescriptor, 0, len(w.AllowCredentials))
		for i, c := range w.AllowCredentials {
			prefix := "allowCredentials[" + strconv.Itoa(i) + "]"

			id, err := decodeBytes(prefix+".id", c.ID)
			if err != nil {
				return nil, err
			}

			transports, err := decodeTransports(prefix+".transports", c.Transports)
			if err != nil {
				return nil, err
			}

			allowed = append(allowed, webauthntypes.CredentialDescriptor{
				Type:       webauthntypes.PublicKeyCredentialType(c.Type),
				ID:         id,
				Transports: transports,
			})
		}
	}

	uv := mo.None[webauthntypes.UserVerificationRequirement]()
	if w.UserVerification != nil {
		v := webauthntypes.UserVerificationRequirement(*w.UserVerification)
		if !v.Registered() {
			return nil, &UnknownEnumError{Field: "userVerification", Raw: *w.UserVerification}
		}
		uv = mo.Some(v)
	}

	return &webauthntypes.RequestOptions{
		Challenge:        challenge,
		Timeout:          mo.PointerToOption(w.Timeout),
		RelyingPartyID:   mo.PointerToOption(w.RelyingPartyID),
		AllowCredentials: allowed,
		UserVerification: uv,
	}, nil
}

// DecodeRegistrationCredential decodes the credential a browser returns
// after a registration ceremony.
func DecodeRegistrationCredential(data []byte, opts ...Option) (*webauthntypes.RegistrationCredential, error) {
	oo := NewOptions(opts...)

	rec, err := decodeRegistrationCredential(data, oo)
	if err != nil {
		oo.Logger.Debug("registration credential decode failed", "err", err)
		return nil, err
	}

	return rec, nil
}

func decodeRegistrationCredential(data []byte, oo *Options) (*webauthntypes.RegistrationCredential, error) {
	var w registrationCredentialWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("wirecodec: %w", err)
	}

	if w.ID == nil {
		return nil, &FieldError{Field: "id", Err: ErrMissingField}
	}

	rawID, err := decodeBytes("rawId", w.RawID)
	if err != nil {
		return nil, err
	}

	if err := checkCredentialID(oo, *w.ID, rawID); err != nil {
		return nil, err
	}

	response, err := decodeAttestationResponse("response", w.Response)
	if err != nil {
		return nil, err
	}

	return &webauthntypes.RegistrationCredential{
		ID:       *w.ID,
		Type:     w.Type,
		RawID:    rawID,
		Response: response,
	}, nil
}

// DecodeAuthenticationCredential decodes the credential a browser returns
// after an authentication ceremony.
func DecodeAuthenticationCredential(data []byte, opts ...Option) (*webauthntypes.AuthenticationCredential, error) {
	oo := NewOptions(opts...)

	rec, err := decodeAuthenticationCredential(data, oo)
	if err != nil {
		oo.Logger.Debug("authentication credential decode failed", "err", err)
		return nil, err
	}

	return rec, nil
}

func decodeAuthenticationCredential(data []byte, oo *Options) (*webauthntypes.AuthenticationCredential, error) {
	var w authenticationCredentialWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("wirecodec: %w", err)
	}

	if w.ID == nil {
		return nil, &FieldError{Field: "id", Err: ErrMissingField}
	}

	rawID, err := decodeBytes("rawId", w.RawID)
	if err != nil {
		return nil, err
	}

	if err := checkCredentialID(oo, *w.ID, rawID); err != nil {
		return nil, err
	}

	response, err := decodeAssertionResponse("response", w.Response)
	if err != nil {
		return nil, err
	}

	return &webauthntypes.AuthenticationCredential{
		ID:                      *w.ID,
		Type:                    w.Type,
		RawID:                   rawID,
		Response:                response,
		AuthenticatorAttachment: mo.PointerToOption(w.AuthenticatorAttachment),
	}, nil
}

func decodeUserEntity(prefix string, w *userEntityWire) (webauthntypes.UserEntity, error) {
	if w == nil {
		return webauthntypes.UserEntity{}, &FieldError{Field: prefix, Err: ErrMissingField}
	}

	id, err := decodeBytes(prefix+".id", w.ID)
	if err != nil {
		return webauthntypes.UserEntity{}, err
	}

	return webauthntypes.UserEntity{
		ID:          id,
		Name:        w.Name,
		DisplayName: w.DisplayName,
	}, nil
}

func decodeAttestationResponse(prefix string, w *attestationResponseWire) (webauthntypes.AttestationResponse, error) {
	if w == nil {
		return webauthntypes.AttestationResponse{}, &FieldError{Field: prefix, Err: ErrMissingField}
	}

	clientDataJSON, err := decodeBytes(prefix+".clientDataJSON", w.ClientDataJSON)
	if err != nil {
		return webauthntypes.AttestationResponse{}, err
	}

	attestationObject, err := decodeBytes(prefix+".attestationObject", w.AttestationObject)
	if err != nil {
		return webauthntypes.AttestationResponse{}, err
	}

	return webauthntypes.AttestationResponse{
		ClientDataJSON:    clientDataJSON,
		AttestationObject: attestationObject,
	}, nil
}

func decodeAssertionResponse(prefix string, w *assertionResponseWire) (webauthntypes.AssertionResponse, error) {
	if w == nil {
		return webauthntypes.AssertionResponse{}, &FieldError{Field: prefix, Err: ErrMissingField}
	}

	clientDataJSON, err := decodeBytes(prefix+".clientDataJSON", w.ClientDataJSON)
	if err != nil {
		return webauthntypes.AssertionResponse{}, err
	}

	authenticatorData, err := decodeBytes(prefix+".authenticatorData", w.AuthenticatorData)
	if err != nil {
		return webauthntypes.AssertionResponse{}, err
	}

	signature, err := decodeBytes(prefix+".signature", w.Signature)
	if err != nil {
		return webauthntypes.AssertionResponse{}, err
	}

	userHandle, err := decodeOptionalBytes(prefix+".userHandle", w.UserHandle)
	if err != nil {
		return webauthntypes.AssertionResponse{}, err
	}

	attestationObject, err := decodeOptionalBytes(prefix+".attestationObject", w.AttestationObject)
	if err != nil {
		return webauthntypes.AssertionResponse{}, err
	}

	return webauthntypes.AssertionResponse{
		ClientDataJSON:    clientDataJSON,
		AuthenticatorData: authenticatorData,
		Signature:         signature,
		UserHandle:        userHandle,
		AttestationObject: attestationObject,
	}, nil
}

func decodeBytes(field string, tok *base64url.URLBase64) ([]byte, error) {
	if tok == nil {
		return nil, &FieldError{Field: field, Err: ErrMissingField}
	}

	b, err := tok.Decode()
	if err != nil {
		return nil, &FieldError{Field: field, Err: err}
	}

	return b, nil
}

func decodeOptionalBytes(field string, tok *base64url.URLBase64) (mo.Option[[]byte], error) {
	b, err := base64url.DecodeOption(mo.PointerToOption(tok))
	if err != nil {
		return mo.None[[]byte](), &FieldError{Field: field, Err: err}
	}

	return b, nil
}

func decodeTransports(field string, raw []string) ([]webauthntypes.AuthenticatorTransport, error) {
	if raw == nil {
		return nil, nil
	}

	transports := make([]webauthntypes.AuthenticatorTransport, 0, len(raw))
	for _, s := range raw {
		t := webauthntypes.AuthenticatorTransport(s)
		if !t.Registered() {
			return nil, &UnknownEnumError{Field: field, Raw: s}
		}
		transports = append(transports, t)
	}

	return transports, nil
}

func checkCredentialID(oo *Options, id base64url.URLBase64, rawID []byte) error {
	if !oo.StrictCredentialID {
		return nil
	}

	idBytes, err := id.Decode()
	if err != nil {
		return &FieldError{Field: "id", Err: err}
	}

	if !bytes.Equal(idBytes, rawID) {
		return &FieldError{Field: "rawId", Err: ErrCredentialIDMismatch}
	}

	return nil
}
