package teardown

import "slices"

// SkipReason explains why a resource was left in place.
type SkipReason string

const (
	ReasonUserDeclined    SkipReason = "userDeclined"
	ReasonCodeMismatch    SkipReason = "codeMismatch"
	ReasonUnsupportedType SkipReason = "unsupportedType"
)

// SkippedResource is a resource the run did not delete.
type SkippedResource struct {
	Identifier string
	Reason     SkipReason
}

// Outcome accumulates resources that need manual review.
// Unsupported resource types are kept apart from operator skips.
type Outcome struct {
	skipped   []SkippedResource
	unhandled []SkippedResource
	deleted   []string
}

// NewOutcome returns an empty outcome log.
func NewOutcome() *Outcome {
	return &Outcome{}
}

// Skip records a resource the operator declined or failed to confirm.
func (o *Outcome) Skip(id string, reason SkipReason) {
	o.skipped = append(o.skipped, SkippedResource{Identifier: id, Reason: reason})
}

// NotHandled records a resource whose type has no deletion handler.
func (o *Outcome) NotHandled(id string) {
	o.unhandled = append(o.unhandled, SkippedResource{Identifier: id, Reason: ReasonUnsupportedType})
}

// Deleted records a removed resource.
func (o *Outcome) Deleted(id string) {
	o.deleted = append(o.deleted, id)
}

// Skipped returns the operator-skipped resources in record order.
func (o *Outcome) Skipped() []SkippedResource {
	return slices.Clone(o.skipped)
}

// Unhandled returns resources of unsupported types in record order.
func (o *Outcome) Unhandled() []SkippedResource {
	return slices.Clone(o.unhandled)
}

// DeletedResources returns identifiers of removed resources.
func (o *Outcome) DeletedResources() []string {
	return slices.Clone(o.deleted)
}

// Empty reports whether nothing needs manual review.
func (o *Outcome) Empty() bool {
	return len(o.skipped) == 0 && len(o.unhandled) == 0
}

// Report prints the resources that need manual review. It is silent when
// there are none.
func (o *Outcome) Report(r Reporter) {
	if o.Empty() {
		return
	}
	if len(o.skipped) > 0 {
		r.Warnf("The following resources were skipped:")
		for _, s := range o.skipped {
			r.Warnf("  - %s (%s)", s.Identifier, s.Reason)
		}
	}
	if len(o.unhandled) > 0 {
		r.Warnf("The following resources have no deletion handler:")
		for _, s := range o.unhandled {
			r.Warnf("  - %s (%s)", s.Identifier, s.Reason)
		}
	}
	r.Warnf("Review these resources and delete them manually if they are no longer needed.")
}
