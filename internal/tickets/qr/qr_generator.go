package qr

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// Payload is what a ticket QR code carries once decrypted.
type Payload struct {
	Code       string `json:"code"`
	SeatNumber string `json:"seat_number"`
	Event      string `json:"event"`
	Date       string `json:"date"`
	Hall       string `json:"hall"`
}

type QRGenerator struct {
	secret []byte
}

func NewQRGenerator(secret string) *QRGenerator {
	hashed := sha256.Sum256([]byte(secret)) // normalize to 32 bytes
	return &QRGenerator{secret: hashed[:]}
}

// Encrypt returns the URL-safe base64 text embedded in the QR code.
func (q *QRGenerator) Encrypt(payload Payload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return encryptAES(data, q.secret)
}

// Decrypt reverses Encrypt.
func (q *QRGenerator) Decrypt(text string) (Payload, error) {
	var payload Payload
	data, err := decryptAES(text, q.secret)
	if err != nil {
		return payload, err
	}
	err = json.Unmarshal(data, &payload)
	return payload, err
}

// GenerateEncryptedQR renders the encrypted payload as a 256px PNG.
func (q *QRGenerator) GenerateEncryptedQR(payload Payload) ([]byte, error) {
	encrypted, err := q.Encrypt(payload)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

// WritePNG stores the ticket QR code as <dir>/<code>.png and returns the path.
func (q *QRGenerator) WritePNG(dir string, payload Payload) (string, error) {
	png, err := q.GenerateEncryptedQR(payload)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, payload.Code+".png")
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// TerminalString renders the encrypted payload with half-block characters
// suitable for printing to a terminal.
func (q *QRGenerator) TerminalString(payload Payload) (string, error) {
	encrypted, err := q.Encrypt(payload)
	if err != nil {
		return "", err
	}
	code, err := qrcode.New(encrypted, qrcode.Low)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}

func encryptAES(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(data))
	iv := ciphertext[:aes.BlockSize]

	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], data)

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

func decryptAES(text string, key []byte) ([]byte, error) {
	ciphertext, err := base64.URLEncoding.DecodeString(text)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < aes.BlockSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(ciphertext)-aes.BlockSize)
	stream := cipher.NewCTR(block, ciphertext[:aes.BlockSize])
	stream.XORKeyStream(data, ciphertext[aes.BlockSize:])
	return data, nil
}
