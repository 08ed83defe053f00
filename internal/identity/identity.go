// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package identity synthesizes the generated and placeholder fields shared
// by every investor source: record ids, contact emails and avatar URLs.
package identity

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/pdiddy/investor-seed/pkg/types"
)

// IDFunc returns a fresh unique identifier. Tests inject deterministic
// sequences; production uses NewID.
type IDFunc func() string

// NewID returns a random UUID v4 string.
func NewID() string {
	return uuid.NewString()
}

// Sequence returns an IDFunc yielding prefix-1, prefix-2, ... in order.
func Sequence(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Synthesizer derives placeholder contact fields from a company name.
type Synthesizer struct {
	cfg types.IdentityConfig
}

// NewSynthesizer returns a Synthesizer for the given templates.
func NewSynthesizer(cfg types.IdentityConfig) *Synthesizer {
	if cfg.AvatarSlots == 0 {
		cfg.AvatarSlots = 99
	}
	return &Synthesizer{cfg: cfg}
}

// Email returns "contact@<name lowercased, spaces removed><domain>".
func (s *Synthesizer) Email(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "")
	return "contact@" + slug + s.cfg.EmailDomain
}

// AvatarIndex maps name to [0, AvatarSlots) with xxhash, so the same name
// always gets the same avatar across runs.
func (s *Synthesizer) AvatarIndex(name string) uint64 {
	return xxhash.Sum64String(name) % s.cfg.AvatarSlots
}

// AvatarURL formats the avatar template with the index for name.
func (s *Synthesizer) AvatarURL(name string) string {
	return fmt.Sprintf(s.cfg.AvatarTemplate, s.AvatarIndex(name))
}

// FullName returns name with the configured firm suffix.
func (s *Synthesizer) FullName(name string) string {
	return name + s.cfg.FullNameSuffix
}
