// Code generated by ent, DO NOT EDIT.

package taskqueuestat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldContainsFold(FieldID, id))
}

// QueueName applies equality check predicate on the "queue_name" field. It's identical to QueueNameEQ.
func QueueName(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldQueueName, v))
}

// WorkerCount applies equality check predicate on the "worker_count" field. It's identical to WorkerCountEQ.
func WorkerCount(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldWorkerCount, v))
}

// QueuedCount applies equality check predicate on the "queued_count" field. It's identical to QueuedCountEQ.
func QueuedCount(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldQueuedCount, v))
}

// ActiveCount applies equality check predicate on the "active_count" field. It's identical to ActiveCountEQ.
func ActiveCount(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldActiveCount, v))
}

// Utilization applies equality check predicate on the "utilization" field. It's identical to UtilizationEQ.
func Utilization(v float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldUtilization, v))
}

// SampledAt applies equality check predicate on the "sampled_at" field. It's identical to SampledAtEQ.
func SampledAt(v time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldSampledAt, v))
}

// QueueNameEQ applies the EQ predicate on the "queue_name" field.
func QueueNameEQ(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldQueueName, v))
}

// QueueNameNEQ applies the NEQ predicate on the "queue_name" field.
func QueueNameNEQ(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNEQ(FieldQueueName, v))
}

// QueueNameIn applies the In predicate on the "queue_name" field.
func QueueNameIn(vs ...string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldIn(FieldQueueName, vs...))
}

// QueueNameNotIn applies the NotIn predicate on the "queue_name" field.
func QueueNameNotIn(vs ...string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNotIn(FieldQueueName, vs...))
}

// QueueNameGT applies the GT predicate on the "queue_name" field.
func QueueNameGT(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGT(FieldQueueName, v))
}

// QueueNameGTE applies the GTE predicate on the "queue_name" field.
func QueueNameGTE(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGTE(FieldQueueName, v))
}

// QueueNameLT applies the LT predicate on the "queue_name" field.
func QueueNameLT(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLT(FieldQueueName, v))
}

// QueueNameLTE applies the LTE predicate on the "queue_name" field.
func QueueNameLTE(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLTE(FieldQueueName, v))
}

// QueueNameContains applies the Contains predicate on the "queue_name" field.
func QueueNameContains(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldContains(FieldQueueName, v))
}

// QueueNameHasPrefix applies the HasPrefix predicate on the "queue_name" field.
func QueueNameHasPrefix(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldHasPrefix(FieldQueueName, v))
}

// QueueNameHasSuffix applies the HasSuffix predicate on the "queue_name" field.
func QueueNameHasSuffix(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldHasSuffix(FieldQueueName, v))
}

// QueueNameEqualFold applies the EqualFold predicate on the "queue_name" field.
func QueueNameEqualFold(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEqualFold(FieldQueueName, v))
}

// QueueNameContainsFold applies the ContainsFold predicate on the "queue_name" field.
func QueueNameContainsFold(v string) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldContainsFold(FieldQueueName, v))
}

// WorkerCountEQ applies the EQ predicate on the "worker_count" field.
func WorkerCountEQ(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldWorkerCount, v))
}

// WorkerCountNEQ applies the NEQ predicate on the "worker_count" field.
func WorkerCountNEQ(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNEQ(FieldWorkerCount, v))
}

// WorkerCountIn applies the In predicate on the "worker_count" field.
func WorkerCountIn(vs ...int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldIn(FieldWorkerCount, vs...))
}

// WorkerCountNotIn applies the NotIn predicate on the "worker_count" field.
func WorkerCountNotIn(vs ...int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNotIn(FieldWorkerCount, vs...))
}

// WorkerCountGT applies the GT predicate on the "worker_count" field.
func WorkerCountGT(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGT(FieldWorkerCount, v))
}

// WorkerCountGTE applies the GTE predicate on the "worker_count" field.
func WorkerCountGTE(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGTE(FieldWorkerCount, v))
}

// WorkerCountLT applies the LT predicate on the "worker_count" field.
func WorkerCountLT(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLT(FieldWorkerCount, v))
}

// WorkerCountLTE applies the LTE predicate on the "worker_count" field.
func WorkerCountLTE(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLTE(FieldWorkerCount, v))
}

// QueuedCountEQ applies the EQ predicate on the "queued_count" field.
func QueuedCountEQ(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldQueuedCount, v))
}

// QueuedCountNEQ applies the NEQ predicate on the "queued_count" field.
func QueuedCountNEQ(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNEQ(FieldQueuedCount, v))
}

// QueuedCountIn applies the In predicate on the "queued_count" field.
func QueuedCountIn(vs ...int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldIn(FieldQueuedCount, vs...))
}

// QueuedCountNotIn applies the NotIn predicate on the "queued_count" field.
func QueuedCountNotIn(vs ...int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNotIn(FieldQueuedCount, vs...))
}

// QueuedCountGT applies the GT predicate on the "queued_count" field.
func QueuedCountGT(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGT(FieldQueuedCount, v))
}

// QueuedCountGTE applies the GTE predicate on the "queued_count" field.
func QueuedCountGTE(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGTE(FieldQueuedCount, v))
}

// QueuedCountLT applies the LT predicate on the "queued_count" field.
func QueuedCountLT(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLT(FieldQueuedCount, v))
}

// QueuedCountLTE applies the LTE predicate on the "queued_count" field.
func QueuedCountLTE(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLTE(FieldQueuedCount, v))
}

// ActiveCountEQ applies the EQ predicate on the "active_count" field.
func ActiveCountEQ(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldActiveCount, v))
}

// ActiveCountNEQ applies the NEQ predicate on the "active_count" field.
func ActiveCountNEQ(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNEQ(FieldActiveCount, v))
}

// ActiveCountIn applies the In predicate on the "active_count" field.
func ActiveCountIn(vs ...int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldIn(FieldActiveCount, vs...))
}

// ActiveCountNotIn applies the NotIn predicate on the "active_count" field.
func ActiveCountNotIn(vs ...int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNotIn(FieldActiveCount, vs...))
}

// ActiveCountGT applies the GT predicate on the "active_count" field.
func ActiveCountGT(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGT(FieldActiveCount, v))
}

// ActiveCountGTE applies the GTE predicate on the "active_count" field.
func ActiveCountGTE(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGTE(FieldActiveCount, v))
}

// ActiveCountLT applies the LT predicate on the "active_count" field.
func ActiveCountLT(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLT(FieldActiveCount, v))
}

// ActiveCountLTE applies the LTE predicate on the "active_count" field.
func ActiveCountLTE(v int) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLTE(FieldActiveCount, v))
}

// UtilizationEQ applies the EQ predicate on the "utilization" field.
func UtilizationEQ(v float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldUtilization, v))
}

// UtilizationNEQ applies the NEQ predicate on the "utilization" field.
func UtilizationNEQ(v float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNEQ(FieldUtilization, v))
}

// UtilizationIn applies the In predicate on the "utilization" field.
func UtilizationIn(vs ...float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldIn(FieldUtilization, vs...))
}

// UtilizationNotIn applies the NotIn predicate on the "utilization" field.
func UtilizationNotIn(vs ...float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNotIn(FieldUtilization, vs...))
}

// UtilizationGT applies the GT predicate on the "utilization" field.
func UtilizationGT(v float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGT(FieldUtilization, v))
}

// UtilizationGTE applies the GTE predicate on the "utilization" field.
func UtilizationGTE(v float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGTE(FieldUtilization, v))
}

// UtilizationLT applies the LT predicate on the "utilization" field.
func UtilizationLT(v float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLT(FieldUtilization, v))
}

// UtilizationLTE applies the LTE predicate on the "utilization" field.
func UtilizationLTE(v float64) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLTE(FieldUtilization, v))
}

// SampledAtEQ applies the EQ predicate on the "sampled_at" field.
func SampledAtEQ(v time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldEQ(FieldSampledAt, v))
}

// SampledAtNEQ applies the NEQ predicate on the "sampled_at" field.
func SampledAtNEQ(v time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNEQ(FieldSampledAt, v))
}

// SampledAtIn applies the In predicate on the "sampled_at" field.
func SampledAtIn(vs ...time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldIn(FieldSampledAt, vs...))
}

// SampledAtNotIn applies the NotIn predicate on the "sampled_at" field.
func SampledAtNotIn(vs ...time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldNotIn(FieldSampledAt, vs...))
}

// SampledAtGT applies the GT predicate on the "sampled_at" field.
func SampledAtGT(v time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGT(FieldSampledAt, v))
}

// SampledAtGTE applies the GTE predicate on the "sampled_at" field.
func SampledAtGTE(v time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldGTE(FieldSampledAt, v))
}

// SampledAtLT applies the LT predicate on the "sampled_at" field.
func SampledAtLT(v time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLT(FieldSampledAt, v))
}

// SampledAtLTE applies the LTE predicate on the "sampled_at" field.
func SampledAtLTE(v time.Time) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.FieldLTE(FieldSampledAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskQueueStat) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskQueueStat) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskQueueStat) predicate.TaskQueueStat {
	return predicate.TaskQueueStat(sql.NotPredicates(p))
}
