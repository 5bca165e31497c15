package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== BOOKING REFERENCE ====================

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateBookingReference creates a reference like "VHMEB4K2QX81A":
// "VH" + millisecond timestamp in base 36 + 5 random base-36 characters,
// upper-cased. Collisions are accepted as negligible, not prevented.
func GenerateBookingReference() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var random strings.Builder
	for i := 0; i < 5; i++ {
		random.WriteByte(base36Chars[rand.Intn(len(base36Chars))])
	}

	return strings.ToUpper("VH" + timestamp + random.String())
}
