package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata contains metadata about an ingested résumé document
type Metadata struct {
	Filename  string   `json:"filename"`
	Kind      Kind     `json:"kind"`
	Size      int      `json:"size"`
	Timestamp string   `json:"timestamp"`          // RFC3339 format
	Hash      string   `json:"hash"`               // SHA256 hex digest of the raw document bytes
	Readable  bool     `json:"readable"`           // false when the sentinel text was substituted
	Links     []string `json:"links,omitempty"`    // Hyperlinks found in the document
	Warnings  []string `json:"warnings,omitempty"` // Degradations hit while extracting
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(filename string, kind Kind, data []byte) *Metadata {
	return &Metadata{
		Filename:  filename,
		Kind:      kind,
		Size:      len(data),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      ComputeHash(data),
	}
}

// ComputeHash computes the SHA256 hash of data and returns it as hex
func ComputeHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
