// Code generated by ent, DO NOT EDIT.

package taskdecomposition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldTaskID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldDescription, v))
}

// Strategy applies equality check predicate on the "strategy" field. It's identical to StrategyEQ.
func Strategy(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldStrategy, v))
}

// TotalComplexity applies equality check predicate on the "total_complexity" field. It's identical to TotalComplexityEQ.
func TotalComplexity(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldTotalComplexity, v))
}

// MaxParallelism applies equality check predicate on the "max_parallelism" field. It's identical to MaxParallelismEQ.
func MaxParallelism(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldMaxParallelism, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldContainsFold(FieldTaskID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldContainsFold(FieldDescription, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNotIn(FieldStrategy, vs...))
}

// StrategyGT applies the GT predicate on the "strategy" field.
func StrategyGT(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGT(FieldStrategy, v))
}

// StrategyGTE applies the GTE predicate on the "strategy" field.
func StrategyGTE(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGTE(FieldStrategy, v))
}

// StrategyLT applies the LT predicate on the "strategy" field.
func StrategyLT(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLT(FieldStrategy, v))
}

// StrategyLTE applies the LTE predicate on the "strategy" field.
func StrategyLTE(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLTE(FieldStrategy, v))
}

// StrategyContains applies the Contains predicate on the "strategy" field.
func StrategyContains(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldContains(FieldStrategy, v))
}

// StrategyHasPrefix applies the HasPrefix predicate on the "strategy" field.
func StrategyHasPrefix(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldHasPrefix(FieldStrategy, v))
}

// StrategyHasSuffix applies the HasSuffix predicate on the "strategy" field.
func StrategyHasSuffix(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldHasSuffix(FieldStrategy, v))
}

// StrategyEqualFold applies the EqualFold predicate on the "strategy" field.
func StrategyEqualFold(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEqualFold(FieldStrategy, v))
}

// StrategyContainsFold applies the ContainsFold predicate on the "strategy" field.
func StrategyContainsFold(v string) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldContainsFold(FieldStrategy, v))
}

// TotalComplexityEQ applies the EQ predicate on the "total_complexity" field.
func TotalComplexityEQ(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldTotalComplexity, v))
}

// TotalComplexityNEQ applies the NEQ predicate on the "total_complexity" field.
func TotalComplexityNEQ(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNEQ(FieldTotalComplexity, v))
}

// TotalComplexityIn applies the In predicate on the "total_complexity" field.
func TotalComplexityIn(vs ...int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldIn(FieldTotalComplexity, vs...))
}

// TotalComplexityNotIn applies the NotIn predicate on the "total_complexity" field.
func TotalComplexityNotIn(vs ...int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNotIn(FieldTotalComplexity, vs...))
}

// TotalComplexityGT applies the GT predicate on the "total_complexity" field.
func TotalComplexityGT(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGT(FieldTotalComplexity, v))
}

// TotalComplexityGTE applies the GTE predicate on the "total_complexity" field.
func TotalComplexityGTE(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGTE(FieldTotalComplexity, v))
}

// TotalComplexityLT applies the LT predicate on the "total_complexity" field.
func TotalComplexityLT(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLT(FieldTotalComplexity, v))
}

// TotalComplexityLTE applies the LTE predicate on the "total_complexity" field.
func TotalComplexityLTE(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLTE(FieldTotalComplexity, v))
}

// MaxParallelismEQ applies the EQ predicate on the "max_parallelism" field.
func MaxParallelismEQ(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldMaxParallelism, v))
}

// MaxParallelismNEQ applies the NEQ predicate on the "max_parallelism" field.
func MaxParallelismNEQ(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNEQ(FieldMaxParallelism, v))
}

// MaxParallelismIn applies the In predicate on the "max_parallelism" field.
func MaxParallelismIn(vs ...int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldIn(FieldMaxParallelism, vs...))
}

// MaxParallelismNotIn applies the NotIn predicate on the "max_parallelism" field.
func MaxParallelismNotIn(vs ...int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNotIn(FieldMaxParallelism, vs...))
}

// MaxParallelismGT applies the GT predicate on the "max_parallelism" field.
func MaxParallelismGT(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGT(FieldMaxParallelism, v))
}

// MaxParallelismGTE applies the GTE predicate on the "max_parallelism" field.
func MaxParallelismGTE(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGTE(FieldMaxParallelism, v))
}

// MaxParallelismLT applies the LT predicate on the "max_parallelism" field.
func MaxParallelismLT(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLT(FieldMaxParallelism, v))
}

// MaxParallelismLTE applies the LTE predicate on the "max_parallelism" field.
func MaxParallelismLTE(v int) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLTE(FieldMaxParallelism, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskDecomposition {
	return predicate.TaskDecomposition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskDecomposition) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskDecomposition) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskDecomposition) predicate.TaskDecomposition {
	return predicate.TaskDecomposition(sql.NotPredicates(p))
}
