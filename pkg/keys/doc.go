/*
Package keys loads the RSA private keys used to sign registration requests.

Keys are read from PEM material, either a file or any io.Reader. Both
unencrypted and passphrase protected keys are supported:

  - PRIVATE KEY (PKCS#8) and RSA PRIVATE KEY (PKCS#1)
  - ENCRYPTED PRIVATE KEY (PKCS#8, PBES2 with AES)
  - RSA PRIVATE KEY with OpenSSL "Proc-Type: 4,ENCRYPTED" headers

Failures are reported with sentinel errors that can be matched with
errors.Is: ErrKeyFormat, ErrKeyDecryption and ErrUnsupportedKeyType.

A Loader is configured once at process startup:

	loader := keys.NewLoader(
	    keys.WithLogger(klog.Background()),
	    keys.WithMinimumBits(2048),
	)
	key, err := loader.LoadFile("merchant.pem", os.Getenv("KEY_PASSPHRASE"))

The package never caches keys and never writes key material anywhere.
*/
package keys
