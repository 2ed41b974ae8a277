// Code generated by ent, DO NOT EDIT.

package scalingdecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldContainsFold(FieldID, id))
}

// QueueName applies equality check predicate on the "queue_name" field. It's identical to QueueNameEQ.
func QueueName(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldQueueName, v))
}

// CurrentWorkers applies equality check predicate on the "current_workers" field. It's identical to CurrentWorkersEQ.
func CurrentWorkers(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldCurrentWorkers, v))
}

// TargetWorkers applies equality check predicate on the "target_workers" field. It's identical to TargetWorkersEQ.
func TargetWorkers(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldTargetWorkers, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldReason, v))
}

// Applied applies equality check predicate on the "applied" field. It's identical to AppliedEQ.
func Applied(v bool) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldApplied, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNotIn(FieldDecision, vs...))
}

// QueueNameEQ applies the EQ predicate on the "queue_name" field.
func QueueNameEQ(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldQueueName, v))
}

// QueueNameNEQ applies the NEQ predicate on the "queue_name" field.
func QueueNameNEQ(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNEQ(FieldQueueName, v))
}

// QueueNameIn applies the In predicate on the "queue_name" field.
func QueueNameIn(vs ...string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldIn(FieldQueueName, vs...))
}

// QueueNameNotIn applies the NotIn predicate on the "queue_name" field.
func QueueNameNotIn(vs ...string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNotIn(FieldQueueName, vs...))
}

// QueueNameGT applies the GT predicate on the "queue_name" field.
func QueueNameGT(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGT(FieldQueueName, v))
}

// QueueNameGTE applies the GTE predicate on the "queue_name" field.
func QueueNameGTE(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGTE(FieldQueueName, v))
}

// QueueNameLT applies the LT predicate on the "queue_name" field.
func QueueNameLT(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLT(FieldQueueName, v))
}

// QueueNameLTE applies the LTE predicate on the "queue_name" field.
func QueueNameLTE(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLTE(FieldQueueName, v))
}

// QueueNameContains applies the Contains predicate on the "queue_name" field.
func QueueNameContains(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldContains(FieldQueueName, v))
}

// QueueNameHasPrefix applies the HasPrefix predicate on the "queue_name" field.
func QueueNameHasPrefix(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldHasPrefix(FieldQueueName, v))
}

// QueueNameHasSuffix applies the HasSuffix predicate on the "queue_name" field.
func QueueNameHasSuffix(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldHasSuffix(FieldQueueName, v))
}

// QueueNameEqualFold applies the EqualFold predicate on the "queue_name" field.
func QueueNameEqualFold(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEqualFold(FieldQueueName, v))
}

// QueueNameContainsFold applies the ContainsFold predicate on the "queue_name" field.
func QueueNameContainsFold(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldContainsFold(FieldQueueName, v))
}

// CurrentWorkersEQ applies the EQ predicate on the "current_workers" field.
func CurrentWorkersEQ(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldCurrentWorkers, v))
}

// CurrentWorkersNEQ applies the NEQ predicate on the "current_workers" field.
func CurrentWorkersNEQ(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNEQ(FieldCurrentWorkers, v))
}

// CurrentWorkersIn applies the In predicate on the "current_workers" field.
func CurrentWorkersIn(vs ...int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldIn(FieldCurrentWorkers, vs...))
}

// CurrentWorkersNotIn applies the NotIn predicate on the "current_workers" field.
func CurrentWorkersNotIn(vs ...int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNotIn(FieldCurrentWorkers, vs...))
}

// CurrentWorkersGT applies the GT predicate on the "current_workers" field.
func CurrentWorkersGT(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGT(FieldCurrentWorkers, v))
}

// CurrentWorkersGTE applies the GTE predicate on the "current_workers" field.
func CurrentWorkersGTE(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGTE(FieldCurrentWorkers, v))
}

// CurrentWorkersLT applies the LT predicate on the "current_workers" field.
func CurrentWorkersLT(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLT(FieldCurrentWorkers, v))
}

// CurrentWorkersLTE applies the LTE predicate on the "current_workers" field.
func CurrentWorkersLTE(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLTE(FieldCurrentWorkers, v))
}

// TargetWorkersEQ applies the EQ predicate on the "target_workers" field.
func TargetWorkersEQ(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldTargetWorkers, v))
}

// TargetWorkersNEQ applies the NEQ predicate on the "target_workers" field.
func TargetWorkersNEQ(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNEQ(FieldTargetWorkers, v))
}

// TargetWorkersIn applies the In predicate on the "target_workers" field.
func TargetWorkersIn(vs ...int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldIn(FieldTargetWorkers, vs...))
}

// TargetWorkersNotIn applies the NotIn predicate on the "target_workers" field.
func TargetWorkersNotIn(vs ...int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNotIn(FieldTargetWorkers, vs...))
}

// TargetWorkersGT applies the GT predicate on the "target_workers" field.
func TargetWorkersGT(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGT(FieldTargetWorkers, v))
}

// TargetWorkersGTE applies the GTE predicate on the "target_workers" field.
func TargetWorkersGTE(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGTE(FieldTargetWorkers, v))
}

// TargetWorkersLT applies the LT predicate on the "target_workers" field.
func TargetWorkersLT(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLT(FieldTargetWorkers, v))
}

// TargetWorkersLTE applies the LTE predicate on the "target_workers" field.
func TargetWorkersLTE(v int) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLTE(FieldTargetWorkers, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldContainsFold(FieldReason, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNotNull(FieldMetrics))
}

// AppliedEQ applies the EQ predicate on the "applied" field.
func AppliedEQ(v bool) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldApplied, v))
}

// AppliedNEQ applies the NEQ predicate on the "applied" field.
func AppliedNEQ(v bool) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNEQ(FieldApplied, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScalingDecision) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScalingDecision) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScalingDecision) predicate.ScalingDecision {
	return predicate.ScalingDecision(sql.NotPredicates(p))
}
