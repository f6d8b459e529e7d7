// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/diagramfeedback"
	"github.com/abhisek/diagen/ent/predicate"
)

// DiagramFeedbackDelete is the builder for deleting a DiagramFeedback entity.
type DiagramFeedbackDelete struct {
	config
	hooks    []Hook
	mutation *DiagramFeedbackMutation
}

// Where appends a list predicates to the DiagramFeedbackDelete builder.
func (_d *DiagramFeedbackDelete) Where(ps ...predicate.DiagramFeedback) *DiagramFeedbackDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiagramFeedbackDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagramFeedbackDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiagramFeedbackDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(diagramfeedback.Table, sqlgraph.NewFieldSpec(diagramfeedback.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DiagramFeedbackDeleteOne is the builder for deleting a single DiagramFeedback entity.
type DiagramFeedbackDeleteOne struct {
	_d *DiagramFeedbackDelete
}

// Where appends a list predicates to the DiagramFeedbackDelete builder.
func (_d *DiagramFeedbackDeleteOne) Where(ps ...predicate.DiagramFeedback) *DiagramFeedbackDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiagramFeedbackDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{diagramfeedback.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagramFeedbackDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
