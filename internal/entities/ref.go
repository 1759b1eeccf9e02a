package entities

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// OrderRef is a parsed order identifier. A raw path parameter may be a
// store-generated UID, an application-level numeric id, or (textually) both;
// resolution always tries the UID interpretation first.
type OrderRef struct {
	UID       *uuid.UUID
	NumericID *int64
}

// ResolvedBy records which identifier space an OrderRef matched in.
type ResolvedBy int

const (
	ResolvedByUID ResolvedBy = iota + 1
	ResolvedByNumericID
)

func (r ResolvedBy) String() string {
	switch r {
	case ResolvedByUID:
		return "uid"
	case ResolvedByNumericID:
		return "numeric_id"
	default:
		return "unknown"
	}
}

// ParseOrderRef interprets a raw identifier string. It returns
// ErrInvalidOrderRef when the string is empty, whitespace, or neither a valid
// UID nor a non-negative integer.
func ParseOrderRef(raw string) (OrderRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return OrderRef{}, ErrInvalidOrderRef
	}

	var ref OrderRef
	if uid, err := uuid.Parse(raw); err == nil {
		ref.UID = &uid
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id >= 0 {
		ref.NumericID = &id
	}

	if ref.UID == nil && ref.NumericID == nil {
		return OrderRef{}, ErrInvalidOrderRef
	}
	return ref, nil
}
