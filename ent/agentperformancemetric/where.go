// Code generated by ent, DO NOT EDIT.

package agentperformancemetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldAgentID, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldValue, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldRecordedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldContainsFold(FieldAgentID, v))
}

// MetricTypeEQ applies the EQ predicate on the "metric_type" field.
func MetricTypeEQ(v MetricType) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldMetricType, v))
}

// MetricTypeNEQ applies the NEQ predicate on the "metric_type" field.
func MetricTypeNEQ(v MetricType) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNEQ(FieldMetricType, v))
}

// MetricTypeIn applies the In predicate on the "metric_type" field.
func MetricTypeIn(vs ...MetricType) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldIn(FieldMetricType, vs...))
}

// MetricTypeNotIn applies the NotIn predicate on the "metric_type" field.
func MetricTypeNotIn(vs ...MetricType) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNotIn(FieldMetricType, vs...))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldLTE(FieldValue, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNotNull(FieldTags))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.FieldLTE(FieldRecordedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentPerformanceMetric) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentPerformanceMetric) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentPerformanceMetric) predicate.AgentPerformanceMetric {
	return predicate.AgentPerformanceMetric(sql.NotPredicates(p))
}
