/*
Package vault signs registration requests with an RSA key kept in HashiCorp
Vault's Transit engine.

The Signer implements algorithms.Signer for RS256 and can be passed to
request.BuildWithSigner in place of a local key:

	signer, err := vault.NewSigner(vault.Config{
	    Address: "http://localhost:8200",
	    Token:   os.Getenv("VAULT_TOKEN"),
	    KeyName: "s2p-merchant",
	})
	if err != nil {
	    log.Fatal(err)
	}

	env, err := request.BuildWithSigner(request.SaveToMembership, reg, keyID, signer)

Requests go to <mount>/sign/<key>/sha2-256 with signature_algorithm=pkcs1v15,
so the signature is identical to a local RS256 signature with the same key.
The Transit key must be of type rsa-2048, rsa-3072 or rsa-4096.

PublicKey reads the latest key version, for publishing it as a JWK.
*/
package vault
