// ABOUTME: Creator entity and the synthetic ID derivation for providerless creators
// ABOUTME: Creators are mutated only by find-or-create; attribution is fill-only except name

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Creator is the author/channel/show owner of canonical items,
// unique on (provider, providerCreatorId).
type Creator struct {
	ID                string   `json:"id"`
	Provider          Provider `json:"provider"`
	ProviderCreatorID string   `json:"provider_creator_id"`
	Name              string   `json:"name"`
	NormalizedName    string   `json:"normalized_name"`
	ImageURL          *string  `json:"image_url,omitempty"`
	Handle            *string  `json:"handle,omitempty"`
	ExternalURL       *string  `json:"external_url,omitempty"`
	Description       *string  `json:"description,omitempty"`
	CreatedAt         int64    `json:"created_at"`
	UpdatedAt         int64    `json:"updated_at"`
}

// NormalizeCreatorName lowercases and trims a display name for matching.
func NormalizeCreatorName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SyntheticCreatorID derives a stable creator id for providers without
// native creator ids (RSS/WEB): first 32 hex chars of
// sha256("{provider}:{lowercase(trim(name))}").
func SyntheticCreatorID(provider Provider, name string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", provider, NormalizeCreatorName(name))))
	return hex.EncodeToString(sum[:])[:32]
}
