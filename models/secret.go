package models

// EncryptedSecret is the nonce + ciphertext + salt triple stored
// server-side and returned by GET /user/get_secret. The server cannot
// open it; decryption happens on the client with the password-derived
// key for SecretSalt.
type EncryptedSecret struct {
	Secret      Bytes `json:"secret"`
	SecretNonce Bytes `json:"secret_nonce"`
	SecretSalt  Bytes `json:"secret_salt"`
}
