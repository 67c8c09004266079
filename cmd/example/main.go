package main

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/mo"

	"github.com/go-ctap/webauthnwire/pkg/authdata"
	"github.com/go-ctap/webauthnwire/pkg/base64url"
	"github.com/go-ctap/webauthnwire/pkg/webauthntypes"
	"github.com/go-ctap/webauthnwire/pkg/wirecodec"
)

func main() {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelDebug)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))

	// Challenge generation belongs to the ceremony orchestrator, not the
	// codec; here it just feeds the demo.
	challenge := make([]byte, 32)
	if _, err := rand.Read(challenge); err != nil {
		panic(err)
	}

	creationOptions, err := wirecodec.EncodeRegistrationOptions(&webauthntypes.RegistrationOptions{
		Challenge:    challenge,
		RelyingParty: webauthntypes.RpEntity{ID: "example.com", Name: "Example"},
		User: webauthntypes.UserEntity{
			ID:          []byte{0x01, 0x02, 0x03, 0x04},
			Name:        "j.doe",
			DisplayName: "Jamie Doe",
		},
		CredentialParameters: webauthntypes.DefaultCredentialParameters(),
		Timeout:              mo.Some(uint32(60000)),
		Attestation:          webauthntypes.AttestationPreferenceNone,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("navigator.credentials.create options: %s\n", creationOptions)

	requestOptions, err := wirecodec.EncodeRequestOptions(&webauthntypes.RequestOptions{
		Challenge:      challenge,
		RelyingPartyID: mo.Some("example.com"),
		AllowCredentials: []webauthntypes.CredentialDescriptor{
			{
				Type: webauthntypes.PublicKeyCredentialTypePublicKey,
				ID:   []byte{0xde, 0xad, 0xbe, 0xef},
				Transports: []webauthntypes.AuthenticatorTransport{
					webauthntypes.AuthenticatorTransportUSB,
					webauthntypes.AuthenticatorTransportHybrid,
				},
			},
		},
		UserVerification: mo.Some(webauthntypes.UserVerificationPreferred),
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("navigator.credentials.get options: %s\n", requestOptions)

	// A captured assertion as a browser would POST it back.
	assertion := fmt.Sprintf(`{
		"id": %q,
		"type": "public-key",
		"rawId": %q,
		"response": {
			"clientDataJSON": %q,
			"authenticatorData": %q,
			"signature": %q
		}
	}`,
		base64url.Encode([]byte{0xde, 0xad, 0xbe, 0xef}),
		base64url.Encode([]byte{0xde, 0xad, 0xbe, 0xef}),
		base64url.Encode([]byte(`{"type":"webauthn.get"}`)),
		base64url.Encode(sampleAuthenticatorData()),
		base64url.Encode([]byte{0x30, 0x45, 0x02, 0x21}),
	)

	cred, err := wirecodec.DecodeAuthenticationCredential(
		[]byte(assertion),
		wirecodec.WithLogger(logger),
		wirecodec.WithStrictCredentialID(),
	)
	if err != nil {
		panic(err)
	}

	d, err := authdata.Parse(cred.Response.AuthenticatorData)
	if err != nil {
		panic(err)
	}
	logger.Info("assertion decoded",
		"credentialId", cred.ID,
		"userPresent", d.Flags.UserPresent(),
		"userVerified", d.Flags.UserVerified(),
		"signCount", d.SignCount,
	)
}

func sampleAuthenticatorData() []byte {
	data := make([]byte, 37)
	data[32] = byte(authdata.FlagUserPresent | authdata.FlagUserVerified)
	data[36] = 0x2a

	return data
}
