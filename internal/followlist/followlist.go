// Package followlist encodes and decodes the comma-joined id lists stored
// in user custom fields. The encoding is a legacy artifact of the generic
// attribute store: "1,2,3" means the ordered set {1, 2, 3}, and the order
// is append order.
package followlist

import (
	"strconv"
	"strings"
)

// Decode parses a stored list value. An empty or absent value is the empty
// set. Tokens that do not parse as decimal ids are dropped rather than
// failing the whole list.
func Decode(raw string) []uint {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// Encode renders ids back to the stored comma-joined form.
func Encode(ids []uint) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

// Contains reports whether id is a member of ids.
func Contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Append adds id to the end of ids if it is not already present, keeping
// the list duplicate-free. Re-adding an existing member is a no-op.
func Append(ids []uint, id uint) []uint {
	if Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

// Remove deletes id from ids, preserving the order of the remaining
// members. Removing a non-member is a no-op.
func Remove(ids []uint, id uint) []uint {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
