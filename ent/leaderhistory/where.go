// Code generated by ent, DO NOT EDIT.

package leaderhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContainsFold(FieldID, id))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldRole, v))
}

// OldNodeID applies equality check predicate on the "old_node_id" field. It's identical to OldNodeIDEQ.
func OldNodeID(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldOldNodeID, v))
}

// NewNodeID applies equality check predicate on the "new_node_id" field. It's identical to NewNodeIDEQ.
func NewNodeID(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldNewNodeID, v))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldTerm, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContainsFold(FieldRole, v))
}

// OldNodeIDEQ applies the EQ predicate on the "old_node_id" field.
func OldNodeIDEQ(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldOldNodeID, v))
}

// OldNodeIDNEQ applies the NEQ predicate on the "old_node_id" field.
func OldNodeIDNEQ(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNEQ(FieldOldNodeID, v))
}

// OldNodeIDIn applies the In predicate on the "old_node_id" field.
func OldNodeIDIn(vs ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldIn(FieldOldNodeID, vs...))
}

// OldNodeIDNotIn applies the NotIn predicate on the "old_node_id" field.
func OldNodeIDNotIn(vs ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNotIn(FieldOldNodeID, vs...))
}

// OldNodeIDGT applies the GT predicate on the "old_node_id" field.
func OldNodeIDGT(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGT(FieldOldNodeID, v))
}

// OldNodeIDGTE applies the GTE predicate on the "old_node_id" field.
func OldNodeIDGTE(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGTE(FieldOldNodeID, v))
}

// OldNodeIDLT applies the LT predicate on the "old_node_id" field.
func OldNodeIDLT(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLT(FieldOldNodeID, v))
}

// OldNodeIDLTE applies the LTE predicate on the "old_node_id" field.
func OldNodeIDLTE(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLTE(FieldOldNodeID, v))
}

// OldNodeIDContains applies the Contains predicate on the "old_node_id" field.
func OldNodeIDContains(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContains(FieldOldNodeID, v))
}

// OldNodeIDHasPrefix applies the HasPrefix predicate on the "old_node_id" field.
func OldNodeIDHasPrefix(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldHasPrefix(FieldOldNodeID, v))
}

// OldNodeIDHasSuffix applies the HasSuffix predicate on the "old_node_id" field.
func OldNodeIDHasSuffix(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldHasSuffix(FieldOldNodeID, v))
}

// OldNodeIDIsNil applies the IsNil predicate on the "old_node_id" field.
func OldNodeIDIsNil() predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldIsNull(FieldOldNodeID))
}

// OldNodeIDNotNil applies the NotNil predicate on the "old_node_id" field.
func OldNodeIDNotNil() predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNotNull(FieldOldNodeID))
}

// OldNodeIDEqualFold applies the EqualFold predicate on the "old_node_id" field.
func OldNodeIDEqualFold(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEqualFold(FieldOldNodeID, v))
}

// OldNodeIDContainsFold applies the ContainsFold predicate on the "old_node_id" field.
func OldNodeIDContainsFold(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContainsFold(FieldOldNodeID, v))
}

// NewNodeIDEQ applies the EQ predicate on the "new_node_id" field.
func NewNodeIDEQ(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldNewNodeID, v))
}

// NewNodeIDNEQ applies the NEQ predicate on the "new_node_id" field.
func NewNodeIDNEQ(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNEQ(FieldNewNodeID, v))
}

// NewNodeIDIn applies the In predicate on the "new_node_id" field.
func NewNodeIDIn(vs ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldIn(FieldNewNodeID, vs...))
}

// NewNodeIDNotIn applies the NotIn predicate on the "new_node_id" field.
func NewNodeIDNotIn(vs ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNotIn(FieldNewNodeID, vs...))
}

// NewNodeIDGT applies the GT predicate on the "new_node_id" field.
func NewNodeIDGT(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGT(FieldNewNodeID, v))
}

// NewNodeIDGTE applies the GTE predicate on the "new_node_id" field.
func NewNodeIDGTE(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGTE(FieldNewNodeID, v))
}

// NewNodeIDLT applies the LT predicate on the "new_node_id" field.
func NewNodeIDLT(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLT(FieldNewNodeID, v))
}

// NewNodeIDLTE applies the LTE predicate on the "new_node_id" field.
func NewNodeIDLTE(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLTE(FieldNewNodeID, v))
}

// NewNodeIDContains applies the Contains predicate on the "new_node_id" field.
func NewNodeIDContains(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContains(FieldNewNodeID, v))
}

// NewNodeIDHasPrefix applies the HasPrefix predicate on the "new_node_id" field.
func NewNodeIDHasPrefix(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldHasPrefix(FieldNewNodeID, v))
}

// NewNodeIDHasSuffix applies the HasSuffix predicate on the "new_node_id" field.
func NewNodeIDHasSuffix(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldHasSuffix(FieldNewNodeID, v))
}

// NewNodeIDEqualFold applies the EqualFold predicate on the "new_node_id" field.
func NewNodeIDEqualFold(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEqualFold(FieldNewNodeID, v))
}

// NewNodeIDContainsFold applies the ContainsFold predicate on the "new_node_id" field.
func NewNodeIDContainsFold(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContainsFold(FieldNewNodeID, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v int64) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLTE(FieldTerm, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeaderHistory) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeaderHistory) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeaderHistory) predicate.LeaderHistory {
	return predicate.LeaderHistory(sql.NotPredicates(p))
}
