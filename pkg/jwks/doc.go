/*
Package jwks exports the public half of a request signing key as a JSON Web
Key, so it can be registered with the receiving service.

	key, err := jwks.PublicJWK("1D2BE69FF72F4C25AC89B894689C2F1E", privateKey.Key)
	if err != nil {
	    log.Fatal(err)
	}
	set, err := jwks.Set(key)
	doc, err := jwks.Marshal(set)

Keys carry "kid", "alg": "RS256" and "use": "sig". Only public parameters
are ever written.
*/
package jwks
