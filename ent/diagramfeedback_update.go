// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/diagramfeedback"
	"github.com/abhisek/diagen/ent/predicate"
)

// DiagramFeedbackUpdate is the builder for updating DiagramFeedback entities.
type DiagramFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *DiagramFeedbackMutation
}

// Where appends a list predicates to the DiagramFeedbackUpdate builder.
func (_u *DiagramFeedbackUpdate) Where(ps ...predicate.DiagramFeedback) *DiagramFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiagramFeedbackUpdate) SetSessionID(v string) *DiagramFeedbackUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableSessionID(v *string) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserIdentifier sets the "user_identifier" field.
func (_u *DiagramFeedbackUpdate) SetUserIdentifier(v string) *DiagramFeedbackUpdate {
	_u.mutation.SetUserIdentifier(v)
	return _u
}

// SetNillableUserIdentifier sets the "user_identifier" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableUserIdentifier(v *string) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetUserIdentifier(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DiagramFeedbackUpdate) SetKind(v string) *DiagramFeedbackUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableKind(v *string) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDiagramContent sets the "diagram_content" field.
func (_u *DiagramFeedbackUpdate) SetDiagramContent(v string) *DiagramFeedbackUpdate {
	_u.mutation.SetDiagramContent(v)
	return _u
}

// SetNillableDiagramContent sets the "diagram_content" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableDiagramContent(v *string) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetDiagramContent(*v)
	}
	return _u
}

// SetUserPrompt sets the "user_prompt" field.
func (_u *DiagramFeedbackUpdate) SetUserPrompt(v string) *DiagramFeedbackUpdate {
	_u.mutation.SetUserPrompt(v)
	return _u
}

// SetNillableUserPrompt sets the "user_prompt" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableUserPrompt(v *string) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetUserPrompt(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *DiagramFeedbackUpdate) SetRating(v int) *DiagramFeedbackUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableRating(v *int) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *DiagramFeedbackUpdate) AddRating(v int) *DiagramFeedbackUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetFeedbackType sets the "feedback_type" field.
func (_u *DiagramFeedbackUpdate) SetFeedbackType(v diagramfeedback.FeedbackType) *DiagramFeedbackUpdate {
	_u.mutation.SetFeedbackType(v)
	return _u
}

// SetNillableFeedbackType sets the "feedback_type" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableFeedbackType(v *diagramfeedback.FeedbackType) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetFeedbackType(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *DiagramFeedbackUpdate) SetComment(v string) *DiagramFeedbackUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableComment(v *string) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_u *DiagramFeedbackUpdate) SetImprovementSuggestions(v string) *DiagramFeedbackUpdate {
	_u.mutation.SetImprovementSuggestions(v)
	return _u
}

// SetNillableImprovementSuggestions sets the "improvement_suggestions" field if the given value is not nil.
func (_u *DiagramFeedbackUpdate) SetNillableImprovementSuggestions(v *string) *DiagramFeedbackUpdate {
	if v != nil {
		_u.SetImprovementSuggestions(*v)
	}
	return _u
}

// Mutation returns the DiagramFeedbackMutation object of the builder.
func (_u *DiagramFeedbackUpdate) Mutation() *DiagramFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagramFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagramFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagramFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagramFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagramFeedbackUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := diagramfeedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "DiagramFeedback.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeedbackType(); ok {
		if err := diagramfeedback.FeedbackTypeValidator(v); err != nil {
			return &ValidationError{Name: "feedback_type", err: fmt.Errorf(`ent: validator failed for field "DiagramFeedback.feedback_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagramFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagramfeedback.Table, diagramfeedback.Columns, sqlgraph.NewFieldSpec(diagramfeedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagramfeedback.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserIdentifier(); ok {
		_spec.SetField(diagramfeedback.FieldUserIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(diagramfeedback.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagramContent(); ok {
		_spec.SetField(diagramfeedback.FieldDiagramContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPrompt(); ok {
		_spec.SetField(diagramfeedback.FieldUserPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(diagramfeedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(diagramfeedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FeedbackType(); ok {
		_spec.SetField(diagramfeedback.FieldFeedbackType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(diagramfeedback.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(diagramfeedback.FieldImprovementSuggestions, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagramfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagramFeedbackUpdateOne is the builder for updating a single DiagramFeedback entity.
type DiagramFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagramFeedbackMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DiagramFeedbackUpdateOne) SetSessionID(v string) *DiagramFeedbackUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableSessionID(v *string) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserIdentifier sets the "user_identifier" field.
func (_u *DiagramFeedbackUpdateOne) SetUserIdentifier(v string) *DiagramFeedbackUpdateOne {
	_u.mutation.SetUserIdentifier(v)
	return _u
}

// SetNillableUserIdentifier sets the "user_identifier" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableUserIdentifier(v *string) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetUserIdentifier(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DiagramFeedbackUpdateOne) SetKind(v string) *DiagramFeedbackUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableKind(v *string) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDiagramContent sets the "diagram_content" field.
func (_u *DiagramFeedbackUpdateOne) SetDiagramContent(v string) *DiagramFeedbackUpdateOne {
	_u.mutation.SetDiagramContent(v)
	return _u
}

// SetNillableDiagramContent sets the "diagram_content" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableDiagramContent(v *string) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetDiagramContent(*v)
	}
	return _u
}

// SetUserPrompt sets the "user_prompt" field.
func (_u *DiagramFeedbackUpdateOne) SetUserPrompt(v string) *DiagramFeedbackUpdateOne {
	_u.mutation.SetUserPrompt(v)
	return _u
}

// SetNillableUserPrompt sets the "user_prompt" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableUserPrompt(v *string) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetUserPrompt(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *DiagramFeedbackUpdateOne) SetRating(v int) *DiagramFeedbackUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableRating(v *int) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *DiagramFeedbackUpdateOne) AddRating(v int) *DiagramFeedbackUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetFeedbackType sets the "feedback_type" field.
func (_u *DiagramFeedbackUpdateOne) SetFeedbackType(v diagramfeedback.FeedbackType) *DiagramFeedbackUpdateOne {
	_u.mutation.SetFeedbackType(v)
	return _u
}

// SetNillableFeedbackType sets the "feedback_type" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableFeedbackType(v *diagramfeedback.FeedbackType) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetFeedbackType(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *DiagramFeedbackUpdateOne) SetComment(v string) *DiagramFeedbackUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableComment(v *string) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_u *DiagramFeedbackUpdateOne) SetImprovementSuggestions(v string) *DiagramFeedbackUpdateOne {
	_u.mutation.SetImprovementSuggestions(v)
	return _u
}

// SetNillableImprovementSuggestions sets the "improvement_suggestions" field if the given value is not nil.
func (_u *DiagramFeedbackUpdateOne) SetNillableImprovementSuggestions(v *string) *DiagramFeedbackUpdateOne {
	if v != nil {
		_u.SetImprovementSuggestions(*v)
	}
	return _u
}

// Mutation returns the DiagramFeedbackMutation object of the builder.
func (_u *DiagramFeedbackUpdateOne) Mutation() *DiagramFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagramFeedbackUpdate builder.
func (_u *DiagramFeedbackUpdateOne) Where(ps ...predicate.DiagramFeedback) *DiagramFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagramFeedbackUpdateOne) Select(field string, fields ...string) *DiagramFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagramFeedback entity.
func (_u *DiagramFeedbackUpdateOne) Save(ctx context.Context) (*DiagramFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagramFeedbackUpdateOne) SaveX(ctx context.Context) *DiagramFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagramFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagramFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagramFeedbackUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := diagramfeedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "DiagramFeedback.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeedbackType(); ok {
		if err := diagramfeedback.FeedbackTypeValidator(v); err != nil {
			return &ValidationError{Name: "feedback_type", err: fmt.Errorf(`ent: validator failed for field "DiagramFeedback.feedback_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagramFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *DiagramFeedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagramfeedback.Table, diagramfeedback.Columns, sqlgraph.NewFieldSpec(diagramfeedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagramFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagramfeedback.FieldID)
		for _, f := range fields {
			if !diagramfeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagramfeedback.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagramfeedback.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserIdentifier(); ok {
		_spec.SetField(diagramfeedback.FieldUserIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(diagramfeedback.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagramContent(); ok {
		_spec.SetField(diagramfeedback.FieldDiagramContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPrompt(); ok {
		_spec.SetField(diagramfeedback.FieldUserPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(diagramfeedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(diagramfeedback.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FeedbackType(); ok {
		_spec.SetField(diagramfeedback.FieldFeedbackType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(diagramfeedback.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(diagramfeedback.FieldImprovementSuggestions, field.TypeString, value)
	}
	_node = &DiagramFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagramfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
