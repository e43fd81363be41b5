/*
Package seckey implements password-based encryption of secp256k1 private keys
in the tagged "SEC_K1_..." format used by blockchain identity schemes.

These operations include:

-- Parsing and serializing private keys ("PVT_K1_..." and legacy WIF forms) and
public keys ("PUB_K1_..." form)

-- Encrypting a private key with a password, using scrypt key derivation and
AES-256-CBC, at a selectable security level

-- Decrypting an encrypted key and verifying the password against the stored
public key checksum

-- Round-tripping encrypted keys through their binary, textual and structured
(binary/JSON) encodings

Encrypted keys of curve types other than K1 are carried opaquely: they can be
parsed and re-encoded but not decrypted.

Key derivation is CPU and memory intensive. Keep encryption and
decryption off latency-sensitive paths; callers embedding this package in a
server or interactive context should run these operations on a background
worker.

See the examples for more information.
*/
package seckey
