// Package models contain needed models
package models

// EncryptRequest represents the request for encrypting a plaintext
type EncryptRequest struct {
	Key       string `json:"key"`
	Plaintext string `json:"plaintext" binding:"required"`
	Filler    string `json:"filler" binding:"omitempty,len=1"`
}

// DecryptRequest represents the request for decrypting a ciphertext
type DecryptRequest struct {
	Key        string `json:"key"`
	Ciphertext string `json:"ciphertext" binding:"required"`
	Filler     string `json:"filler" binding:"omitempty,len=1"`
}

// CipherResponse represents the response after encryption or decryption
type CipherResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  string `json:"result,omitempty"`
}

// TableRequest represents the request for inspecting a key's table
type TableRequest struct {
	Key string `json:"key"`
}

// TableResponse represents the response carrying the 5x5 table
type TableResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Key     string   `json:"key"`
	Rows    []string `json:"rows,omitempty"`
}

// CipherConfig represents configuration for cipher operations
type CipherConfig struct {
	Key    string
	Filler string
}
