// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/diagramfeedback"
)

// DiagramFeedbackCreate is the builder for creating a DiagramFeedback entity.
type DiagramFeedbackCreate struct {
	config
	mutation *DiagramFeedbackMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DiagramFeedbackCreate) SetSessionID(v string) *DiagramFeedbackCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *DiagramFeedbackCreate) SetNillableSessionID(v *string) *DiagramFeedbackCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetUserIdentifier sets the "user_identifier" field.
func (_c *DiagramFeedbackCreate) SetUserIdentifier(v string) *DiagramFeedbackCreate {
	_c.mutation.SetUserIdentifier(v)
	return _c
}

// SetNillableUserIdentifier sets the "user_identifier" field if the given value is not nil.
func (_c *DiagramFeedbackCreate) SetNillableUserIdentifier(v *string) *DiagramFeedbackCreate {
	if v != nil {
		_c.SetUserIdentifier(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *DiagramFeedbackCreate) SetKind(v string) *DiagramFeedbackCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDiagramContent sets the "diagram_content" field.
func (_c *DiagramFeedbackCreate) SetDiagramContent(v string) *DiagramFeedbackCreate {
	_c.mutation.SetDiagramContent(v)
	return _c
}

// SetUserPrompt sets the "user_prompt" field.
func (_c *DiagramFeedbackCreate) SetUserPrompt(v string) *DiagramFeedbackCreate {
	_c.mutation.SetUserPrompt(v)
	return _c
}

// SetNillableUserPrompt sets the "user_prompt" field if the given value is not nil.
func (_c *DiagramFeedbackCreate) SetNillableUserPrompt(v *string) *DiagramFeedbackCreate {
	if v != nil {
		_c.SetUserPrompt(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *DiagramFeedbackCreate) SetRating(v int) *DiagramFeedbackCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetFeedbackType sets the "feedback_type" field.
func (_c *DiagramFeedbackCreate) SetFeedbackType(v diagramfeedback.FeedbackType) *DiagramFeedbackCreate {
	_c.mutation.SetFeedbackType(v)
	return _c
}

// SetNillableFeedbackType sets the "feedback_type" field if the given value is not nil.
func (_c *DiagramFeedbackCreate) SetNillableFeedbackType(v *diagramfeedback.FeedbackType) *DiagramFeedbackCreate {
	if v != nil {
		_c.SetFeedbackType(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *DiagramFeedbackCreate) SetComment(v string) *DiagramFeedbackCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *DiagramFeedbackCreate) SetNillableComment(v *string) *DiagramFeedbackCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_c *DiagramFeedbackCreate) SetImprovementSuggestions(v string) *DiagramFeedbackCreate {
	_c.mutation.SetImprovementSuggestions(v)
	return _c
}

// SetNillableImprovementSuggestions sets the "improvement_suggestions" field if the given value is not nil.
func (_c *DiagramFeedbackCreate) SetNillableImprovementSuggestions(v *string) *DiagramFeedbackCreate {
	if v != nil {
		_c.SetImprovementSuggestions(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiagramFeedbackCreate) SetCreatedAt(v time.Time) *DiagramFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiagramFeedbackCreate) SetNillableCreatedAt(v *time.Time) *DiagramFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiagramFeedbackCreate) SetID(v string) *DiagramFeedbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DiagramFeedbackMutation object of the builder.
func (_c *DiagramFeedbackCreate) Mutation() *DiagramFeedbackMutation {
	return _c.mutation
}

// Save creates the DiagramFeedback in the database.
func (_c *DiagramFeedbackCreate) Save(ctx context.Context) (*DiagramFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagramFeedbackCreate) SaveX(ctx context.Context) *DiagramFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagramFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagramFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagramFeedbackCreate) defaults() {
	if _, ok := _c.mutation.SessionID(); !ok {
		v := diagramfeedback.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.UserIdentifier(); !ok {
		v := diagramfeedback.DefaultUserIdentifier
		_c.mutation.SetUserIdentifier(v)
	}
	if _, ok := _c.mutation.UserPrompt(); !ok {
		v := diagramfeedback.DefaultUserPrompt
		_c.mutation.SetUserPrompt(v)
	}
	if _, ok := _c.mutation.FeedbackType(); !ok {
		v := diagramfeedback.DefaultFeedbackType
		_c.mutation.SetFeedbackType(v)
	}
	if _, ok := _c.mutation.Comment(); !ok {
		v := diagramfeedback.DefaultComment
		_c.mutation.SetComment(v)
	}
	if _, ok := _c.mutation.ImprovementSuggestions(); !ok {
		v := diagramfeedback.DefaultImprovementSuggestions
		_c.mutation.SetImprovementSuggestions(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := diagramfeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagramFeedbackCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DiagramFeedback.session_id"`)}
	}
	if _, ok := _c.mutation.UserIdentifier(); !ok {
		return &ValidationError{Name: "user_identifier", err: errors.New(`ent: missing required field "DiagramFeedback.user_identifier"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "DiagramFeedback.kind"`)}
	}
	if _, ok := _c.mutation.DiagramContent(); !ok {
		return &ValidationError{Name: "diagram_content", err: errors.New(`ent: missing required field "DiagramFeedback.diagram_content"`)}
	}
	if _, ok := _c.mutation.UserPrompt(); !ok {
		return &ValidationError{Name: "user_prompt", err: errors.New(`ent: missing required field "DiagramFeedback.user_prompt"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "DiagramFeedback.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := diagramfeedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "DiagramFeedback.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeedbackType(); !ok {
		return &ValidationError{Name: "feedback_type", err: errors.New(`ent: missing required field "DiagramFeedback.feedback_type"`)}
	}
	if v, ok := _c.mutation.FeedbackType(); ok {
		if err := diagramfeedback.FeedbackTypeValidator(v); err != nil {
			return &ValidationError{Name: "feedback_type", err: fmt.Errorf(`ent: validator failed for field "DiagramFeedback.feedback_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Comment(); !ok {
		return &ValidationError{Name: "comment", err: errors.New(`ent: missing required field "DiagramFeedback.comment"`)}
	}
	if _, ok := _c.mutation.ImprovementSuggestions(); !ok {
		return &ValidationError{Name: "improvement_suggestions", err: errors.New(`ent: missing required field "DiagramFeedback.improvement_suggestions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DiagramFeedback.created_at"`)}
	}
	return nil
}

func (_c *DiagramFeedbackCreate) sqlSave(ctx context.Context) (*DiagramFeedback, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DiagramFeedback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiagramFeedbackCreate) createSpec() (*DiagramFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagramFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagramfeedback.Table, sqlgraph.NewFieldSpec(diagramfeedback.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(diagramfeedback.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserIdentifier(); ok {
		_spec.SetField(diagramfeedback.FieldUserIdentifier, field.TypeString, value)
		_node.UserIdentifier = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(diagramfeedback.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.DiagramContent(); ok {
		_spec.SetField(diagramfeedback.FieldDiagramContent, field.TypeString, value)
		_node.DiagramContent = value
	}
	if value, ok := _c.mutation.UserPrompt(); ok {
		_spec.SetField(diagramfeedback.FieldUserPrompt, field.TypeString, value)
		_node.UserPrompt = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(diagramfeedback.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.FeedbackType(); ok {
		_spec.SetField(diagramfeedback.FieldFeedbackType, field.TypeEnum, value)
		_node.FeedbackType = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(diagramfeedback.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(diagramfeedback.FieldImprovementSuggestions, field.TypeString, value)
		_node.ImprovementSuggestions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(diagramfeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DiagramFeedbackCreateBulk is the builder for creating many DiagramFeedback entities in bulk.
type DiagramFeedbackCreateBulk struct {
	config
	err      error
	builders []*DiagramFeedbackCreate
}

// Save creates the DiagramFeedback entities in the database.
func (_c *DiagramFeedbackCreateBulk) Save(ctx context.Context) ([]*DiagramFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagramFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagramFeedbackMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DiagramFeedbackCreateBulk) SaveX(ctx context.Context) []*DiagramFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagramFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagramFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
