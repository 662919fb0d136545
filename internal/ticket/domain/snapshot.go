package ticket

import (
	"strings"
	"time"
)

// ConceptRef is the live concept a transaction points at, used only as a
// fallback when the denormalized concept name snapshot is blank.
type ConceptRef struct {
	Name string
}

// CashierRef exposes the username of the cashier that registered the
// transaction.
type CashierRef struct {
	Username string
}

// TransactionSnapshot is a read-only copy of one transaction at export time.
// Every field may be absent; the formatter renders absent fields as empty
// strings or the placeholder token and never mutates the snapshot.
type TransactionSnapshot struct {
	ID          *int64
	Moment      *time.Time
	ConceptName string
	Concept     *ConceptRef
	Amount      *float64
	Commission  *float64
	Cashier     *CashierRef
}

// ConceptPlaceholder stands in for a live concept whose name is blank.
const ConceptPlaceholder = "------"

// ResolvedConceptName resolves the concept display name. The denormalized
// snapshot name wins; a live concept falls back to its own name, or the
// placeholder when that name is blank; with neither source present the
// result is empty.
func (t *TransactionSnapshot) ResolvedConceptName() string {
	if name := strings.TrimSpace(t.ConceptName); name != "" {
		return name
	}
	if t.Concept != nil {
		if name := strings.TrimSpace(t.Concept.Name); name != "" {
			return name
		}
		return ConceptPlaceholder
	}
	return ""
}

// ConfigSnapshot is a read-only copy of the business configuration at export
// time. All fields may be blank.
type ConfigSnapshot struct {
	LegalName    string
	BusinessName string
	Address      string
	Announcement string
}
