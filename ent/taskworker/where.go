// Code generated by ent, DO NOT EDIT.

package taskworker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldContainsFold(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldKind, v))
}

// Hostname applies equality check predicate on the "hostname" field. It's identical to HostnameEQ.
func Hostname(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldHostname, v))
}

// Pid applies equality check predicate on the "pid" field. It's identical to PidEQ.
func Pid(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldPid, v))
}

// MaxTasks applies equality check predicate on the "max_tasks" field. It's identical to MaxTasksEQ.
func MaxTasks(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldMaxTasks, v))
}

// ActiveTasks applies equality check predicate on the "active_tasks" field. It's identical to ActiveTasksEQ.
func ActiveTasks(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldActiveTasks, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldLastHeartbeat, v))
}

// RegisteredAt applies equality check predicate on the "registered_at" field. It's identical to RegisteredAtEQ.
func RegisteredAt(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldRegisteredAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldContainsFold(FieldKind, v))
}

// HostnameEQ applies the EQ predicate on the "hostname" field.
func HostnameEQ(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldHostname, v))
}

// HostnameNEQ applies the NEQ predicate on the "hostname" field.
func HostnameNEQ(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldHostname, v))
}

// HostnameIn applies the In predicate on the "hostname" field.
func HostnameIn(vs ...string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldHostname, vs...))
}

// HostnameNotIn applies the NotIn predicate on the "hostname" field.
func HostnameNotIn(vs ...string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldHostname, vs...))
}

// HostnameGT applies the GT predicate on the "hostname" field.
func HostnameGT(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGT(FieldHostname, v))
}

// HostnameGTE applies the GTE predicate on the "hostname" field.
func HostnameGTE(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGTE(FieldHostname, v))
}

// HostnameLT applies the LT predicate on the "hostname" field.
func HostnameLT(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLT(FieldHostname, v))
}

// HostnameLTE applies the LTE predicate on the "hostname" field.
func HostnameLTE(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLTE(FieldHostname, v))
}

// HostnameContains applies the Contains predicate on the "hostname" field.
func HostnameContains(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldContains(FieldHostname, v))
}

// HostnameHasPrefix applies the HasPrefix predicate on the "hostname" field.
func HostnameHasPrefix(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldHasPrefix(FieldHostname, v))
}

// HostnameHasSuffix applies the HasSuffix predicate on the "hostname" field.
func HostnameHasSuffix(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldHasSuffix(FieldHostname, v))
}

// HostnameEqualFold applies the EqualFold predicate on the "hostname" field.
func HostnameEqualFold(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEqualFold(FieldHostname, v))
}

// HostnameContainsFold applies the ContainsFold predicate on the "hostname" field.
func HostnameContainsFold(v string) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldContainsFold(FieldHostname, v))
}

// PidEQ applies the EQ predicate on the "pid" field.
func PidEQ(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldPid, v))
}

// PidNEQ applies the NEQ predicate on the "pid" field.
func PidNEQ(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldPid, v))
}

// PidIn applies the In predicate on the "pid" field.
func PidIn(vs ...int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldPid, vs...))
}

// PidNotIn applies the NotIn predicate on the "pid" field.
func PidNotIn(vs ...int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldPid, vs...))
}

// PidGT applies the GT predicate on the "pid" field.
func PidGT(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGT(FieldPid, v))
}

// PidGTE applies the GTE predicate on the "pid" field.
func PidGTE(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGTE(FieldPid, v))
}

// PidLT applies the LT predicate on the "pid" field.
func PidLT(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLT(FieldPid, v))
}

// PidLTE applies the LTE predicate on the "pid" field.
func PidLTE(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLTE(FieldPid, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldStatus, vs...))
}

// MaxTasksEQ applies the EQ predicate on the "max_tasks" field.
func MaxTasksEQ(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldMaxTasks, v))
}

// MaxTasksNEQ applies the NEQ predicate on the "max_tasks" field.
func MaxTasksNEQ(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldMaxTasks, v))
}

// MaxTasksIn applies the In predicate on the "max_tasks" field.
func MaxTasksIn(vs ...int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldMaxTasks, vs...))
}

// MaxTasksNotIn applies the NotIn predicate on the "max_tasks" field.
func MaxTasksNotIn(vs ...int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldMaxTasks, vs...))
}

// MaxTasksGT applies the GT predicate on the "max_tasks" field.
func MaxTasksGT(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGT(FieldMaxTasks, v))
}

// MaxTasksGTE applies the GTE predicate on the "max_tasks" field.
func MaxTasksGTE(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGTE(FieldMaxTasks, v))
}

// MaxTasksLT applies the LT predicate on the "max_tasks" field.
func MaxTasksLT(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLT(FieldMaxTasks, v))
}

// MaxTasksLTE applies the LTE predicate on the "max_tasks" field.
func MaxTasksLTE(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLTE(FieldMaxTasks, v))
}

// ActiveTasksEQ applies the EQ predicate on the "active_tasks" field.
func ActiveTasksEQ(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldActiveTasks, v))
}

// ActiveTasksNEQ applies the NEQ predicate on the "active_tasks" field.
func ActiveTasksNEQ(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldActiveTasks, v))
}

// ActiveTasksIn applies the In predicate on the "active_tasks" field.
func ActiveTasksIn(vs ...int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldActiveTasks, vs...))
}

// ActiveTasksNotIn applies the NotIn predicate on the "active_tasks" field.
func ActiveTasksNotIn(vs ...int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldActiveTasks, vs...))
}

// ActiveTasksGT applies the GT predicate on the "active_tasks" field.
func ActiveTasksGT(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGT(FieldActiveTasks, v))
}

// ActiveTasksGTE applies the GTE predicate on the "active_tasks" field.
func ActiveTasksGTE(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGTE(FieldActiveTasks, v))
}

// ActiveTasksLT applies the LT predicate on the "active_tasks" field.
func ActiveTasksLT(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLT(FieldActiveTasks, v))
}

// ActiveTasksLTE applies the LTE predicate on the "active_tasks" field.
func ActiveTasksLTE(v int) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLTE(FieldActiveTasks, v))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotNull(FieldCapabilities))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotNull(FieldMetadata))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLTE(FieldLastHeartbeat, v))
}

// RegisteredAtEQ applies the EQ predicate on the "registered_at" field.
func RegisteredAtEQ(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldEQ(FieldRegisteredAt, v))
}

// RegisteredAtNEQ applies the NEQ predicate on the "registered_at" field.
func RegisteredAtNEQ(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNEQ(FieldRegisteredAt, v))
}

// RegisteredAtIn applies the In predicate on the "registered_at" field.
func RegisteredAtIn(vs ...time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldIn(FieldRegisteredAt, vs...))
}

// RegisteredAtNotIn applies the NotIn predicate on the "registered_at" field.
func RegisteredAtNotIn(vs ...time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldNotIn(FieldRegisteredAt, vs...))
}

// RegisteredAtGT applies the GT predicate on the "registered_at" field.
func RegisteredAtGT(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGT(FieldRegisteredAt, v))
}

// RegisteredAtGTE applies the GTE predicate on the "registered_at" field.
func RegisteredAtGTE(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldGTE(FieldRegisteredAt, v))
}

// RegisteredAtLT applies the LT predicate on the "registered_at" field.
func RegisteredAtLT(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLT(FieldRegisteredAt, v))
}

// RegisteredAtLTE applies the LTE predicate on the "registered_at" field.
func RegisteredAtLTE(v time.Time) predicate.TaskWorker {
	return predicate.TaskWorker(sql.FieldLTE(FieldRegisteredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskWorker) predicate.TaskWorker {
	return predicate.TaskWorker(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskWorker) predicate.TaskWorker {
	return predicate.TaskWorker(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskWorker) predicate.TaskWorker {
	return predicate.TaskWorker(sql.NotPredicates(p))
}
