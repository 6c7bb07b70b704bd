package profile

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
)

// DefaultIcon is assigned to legacy profiles stored before icons existed.
const DefaultIcon = "👤"

// Icons is the fixed picker set a new registration draws from.
var Icons = []string{
	"👤", "👨‍💻", "👩‍💻", "🧑‍🚀", "👾", "🧠", "🤖", "🧐", "💡", "⚡️",
	"🧭", "🎯", "🚀", "🧪", "🧬", "⚙️", "🖥️", "📚", "🔐", "🔑",
}

// Profile is a registered user: the case-normalized username, the
// lowercase-hex SHA-256 of the password, and a display icon.
//
// The hash is unsalted. That matches the system this store is meant to be
// compatible with and is a documented weakness: it gates a local store, it
// does not resist a determined local attacker.
type Profile struct {
	Username string `json:"username"`
	Hash     string `json:"hash"`
	Icon     string `json:"icon,omitempty"`
}

// HashPassword digests the UTF-8 password bytes to lowercase hex.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// RandomIcon picks a pseudo-random icon for a new profile.
func RandomIcon() string {
	return Icons[rand.Intn(len(Icons))]
}
