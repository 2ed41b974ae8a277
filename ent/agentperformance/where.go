// Code generated by ent, DO NOT EDIT.

package agentperformance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAgentID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldDay, v))
}

// TotalExecutions applies equality check predicate on the "total_executions" field. It's identical to TotalExecutionsEQ.
func TotalExecutions(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTotalExecutions, v))
}

// SuccessfulExecutions applies equality check predicate on the "successful_executions" field. It's identical to SuccessfulExecutionsEQ.
func SuccessfulExecutions(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldSuccessfulExecutions, v))
}

// FailedExecutions applies equality check predicate on the "failed_executions" field. It's identical to FailedExecutionsEQ.
func FailedExecutions(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldFailedExecutions, v))
}

// AvgLatencyMs applies equality check predicate on the "avg_latency_ms" field. It's identical to AvgLatencyMsEQ.
func AvgLatencyMs(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTotalCost, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldContainsFold(FieldAgentID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldDay, v))
}

// TotalExecutionsEQ applies the EQ predicate on the "total_executions" field.
func TotalExecutionsEQ(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTotalExecutions, v))
}

// TotalExecutionsNEQ applies the NEQ predicate on the "total_executions" field.
func TotalExecutionsNEQ(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldTotalExecutions, v))
}

// TotalExecutionsIn applies the In predicate on the "total_executions" field.
func TotalExecutionsIn(vs ...int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldTotalExecutions, vs...))
}

// TotalExecutionsNotIn applies the NotIn predicate on the "total_executions" field.
func TotalExecutionsNotIn(vs ...int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldTotalExecutions, vs...))
}

// TotalExecutionsGT applies the GT predicate on the "total_executions" field.
func TotalExecutionsGT(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldTotalExecutions, v))
}

// TotalExecutionsGTE applies the GTE predicate on the "total_executions" field.
func TotalExecutionsGTE(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldTotalExecutions, v))
}

// TotalExecutionsLT applies the LT predicate on the "total_executions" field.
func TotalExecutionsLT(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldTotalExecutions, v))
}

// TotalExecutionsLTE applies the LTE predicate on the "total_executions" field.
func TotalExecutionsLTE(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldTotalExecutions, v))
}

// SuccessfulExecutionsEQ applies the EQ predicate on the "successful_executions" field.
func SuccessfulExecutionsEQ(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsNEQ applies the NEQ predicate on the "successful_executions" field.
func SuccessfulExecutionsNEQ(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsIn applies the In predicate on the "successful_executions" field.
func SuccessfulExecutionsIn(vs ...int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldSuccessfulExecutions, vs...))
}

// SuccessfulExecutionsNotIn applies the NotIn predicate on the "successful_executions" field.
func SuccessfulExecutionsNotIn(vs ...int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldSuccessfulExecutions, vs...))
}

// SuccessfulExecutionsGT applies the GT predicate on the "successful_executions" field.
func SuccessfulExecutionsGT(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsGTE applies the GTE predicate on the "successful_executions" field.
func SuccessfulExecutionsGTE(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsLT applies the LT predicate on the "successful_executions" field.
func SuccessfulExecutionsLT(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldSuccessfulExecutions, v))
}

// SuccessfulExecutionsLTE applies the LTE predicate on the "successful_executions" field.
func SuccessfulExecutionsLTE(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldSuccessfulExecutions, v))
}

// FailedExecutionsEQ applies the EQ predicate on the "failed_executions" field.
func FailedExecutionsEQ(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldFailedExecutions, v))
}

// FailedExecutionsNEQ applies the NEQ predicate on the "failed_executions" field.
func FailedExecutionsNEQ(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldFailedExecutions, v))
}

// FailedExecutionsIn applies the In predicate on the "failed_executions" field.
func FailedExecutionsIn(vs ...int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldFailedExecutions, vs...))
}

// FailedExecutionsNotIn applies the NotIn predicate on the "failed_executions" field.
func FailedExecutionsNotIn(vs ...int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldFailedExecutions, vs...))
}

// FailedExecutionsGT applies the GT predicate on the "failed_executions" field.
func FailedExecutionsGT(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldFailedExecutions, v))
}

// FailedExecutionsGTE applies the GTE predicate on the "failed_executions" field.
func FailedExecutionsGTE(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldFailedExecutions, v))
}

// FailedExecutionsLT applies the LT predicate on the "failed_executions" field.
func FailedExecutionsLT(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldFailedExecutions, v))
}

// FailedExecutionsLTE applies the LTE predicate on the "failed_executions" field.
func FailedExecutionsLTE(v int64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldFailedExecutions, v))
}

// AvgLatencyMsEQ applies the EQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsNEQ applies the NEQ predicate on the "avg_latency_ms" field.
func AvgLatencyMsNEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldAvgLatencyMs, v))
}

// AvgLatencyMsIn applies the In predicate on the "avg_latency_ms" field.
func AvgLatencyMsIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsNotIn applies the NotIn predicate on the "avg_latency_ms" field.
func AvgLatencyMsNotIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldAvgLatencyMs, vs...))
}

// AvgLatencyMsGT applies the GT predicate on the "avg_latency_ms" field.
func AvgLatencyMsGT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsGTE applies the GTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsGTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLT applies the LT predicate on the "avg_latency_ms" field.
func AvgLatencyMsLT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldAvgLatencyMs, v))
}

// AvgLatencyMsLTE applies the LTE predicate on the "avg_latency_ms" field.
func AvgLatencyMsLTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldAvgLatencyMs, v))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldTotalCost, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentPerformance) predicate.AgentPerformance {
	return predicate.AgentPerformance(sql.NotPredicates(p))
}
