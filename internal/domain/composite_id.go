package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CompositeID identifies every lingvodoc object: the id of the client that
// created it and the object id local to that client. Two ids are equal only
// when both components match, so the value is used directly as a map key.
type CompositeID struct {
	ClientID int64
	ObjectID int64
}

// NewCompositeID is a shorthand constructor.
func NewCompositeID(clientID, objectID int64) CompositeID {
	return CompositeID{ClientID: clientID, ObjectID: objectID}
}

// IsZero reports whether both components are zero.
func (id CompositeID) IsZero() bool {
	return id.ClientID == 0 && id.ObjectID == 0
}

// String renders the id as "(cid, oid)". This is the form used for keys of
// the cognate report document.
func (id CompositeID) String() string {
	return fmt.Sprintf("(%d, %d)", id.ClientID, id.ObjectID)
}

// MarshalJSON encodes the id as a two-element array.
func (id CompositeID) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{id.ClientID, id.ObjectID})
}

// UnmarshalJSON decodes a two-element array.
func (id *CompositeID) UnmarshalJSON(data []byte) error {
	var pair [2]int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("composite id: %w", err)
	}
	id.ClientID, id.ObjectID = pair[0], pair[1]
	return nil
}

// ParseCompositeID parses "cid,oid" with optional surrounding parentheses
// and spaces, i.e. both "66,25" and "(66, 25)" are accepted.
func ParseCompositeID(s string) (CompositeID, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return CompositeID{}, NewValidationError("id", fmt.Sprintf("%q is not a client_id,object_id pair", s))
	}

	cid, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return CompositeID{}, NewValidationError("id", fmt.Sprintf("invalid client_id in %q", s))
	}
	oid, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return CompositeID{}, NewValidationError("id", fmt.Sprintf("invalid object_id in %q", s))
	}

	return CompositeID{ClientID: cid, ObjectID: oid}, nil
}

// SplitIDs returns the client and object components as two parallel slices,
// the shape PostgreSQL expects for unnest($1::bigint[], $2::bigint[]).
func SplitIDs(ids []CompositeID) (clientIDs, objectIDs []int64) {
	clientIDs = make([]int64, len(ids))
	objectIDs = make([]int64, len(ids))
	for i, id := range ids {
		clientIDs[i] = id.ClientID
		objectIDs[i] = id.ObjectID
	}
	return clientIDs, objectIDs
}
