// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/userpreference"
)

// UserPreferenceCreate is the builder for creating a UserPreference entity.
type UserPreferenceCreate struct {
	config
	mutation *UserPreferenceMutation
	hooks    []Hook
}

// SetUserIdentifier sets the "user_identifier" field.
func (_c *UserPreferenceCreate) SetUserIdentifier(v string) *UserPreferenceCreate {
	_c.mutation.SetUserIdentifier(v)
	return _c
}

// SetPreferredDetailLevel sets the "preferred_detail_level" field.
func (_c *UserPreferenceCreate) SetPreferredDetailLevel(v string) *UserPreferenceCreate {
	_c.mutation.SetPreferredDetailLevel(v)
	return _c
}

// SetNillablePreferredDetailLevel sets the "preferred_detail_level" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillablePreferredDetailLevel(v *string) *UserPreferenceCreate {
	if v != nil {
		_c.SetPreferredDetailLevel(*v)
	}
	return _c
}

// SetFavoriteKinds sets the "favorite_kinds" field.
func (_c *UserPreferenceCreate) SetFavoriteKinds(v []string) *UserPreferenceCreate {
	_c.mutation.SetFavoriteKinds(v)
	return _c
}

// SetCommonComplaints sets the "common_complaints" field.
func (_c *UserPreferenceCreate) SetCommonComplaints(v []string) *UserPreferenceCreate {
	_c.mutation.SetCommonComplaints(v)
	return _c
}

// SetImprovementFocusAreas sets the "improvement_focus_areas" field.
func (_c *UserPreferenceCreate) SetImprovementFocusAreas(v []string) *UserPreferenceCreate {
	_c.mutation.SetImprovementFocusAreas(v)
	return _c
}

// SetFeedbackCount sets the "feedback_count" field.
func (_c *UserPreferenceCreate) SetFeedbackCount(v int) *UserPreferenceCreate {
	_c.mutation.SetFeedbackCount(v)
	return _c
}

// SetNillableFeedbackCount sets the "feedback_count" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillableFeedbackCount(v *int) *UserPreferenceCreate {
	if v != nil {
		_c.SetFeedbackCount(*v)
	}
	return _c
}

// SetAverageRating sets the "average_rating" field.
func (_c *UserPreferenceCreate) SetAverageRating(v float64) *UserPreferenceCreate {
	_c.mutation.SetAverageRating(v)
	return _c
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillableAverageRating(v *float64) *UserPreferenceCreate {
	if v != nil {
		_c.SetAverageRating(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *UserPreferenceCreate) SetLastUpdated(v time.Time) *UserPreferenceCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillableLastUpdated(v *time.Time) *UserPreferenceCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the UserPreferenceMutation object of the builder.
func (_c *UserPreferenceCreate) Mutation() *UserPreferenceMutation {
	return _c.mutation
}

// Save creates the UserPreference in the database.
func (_c *UserPreferenceCreate) Save(ctx context.Context) (*UserPreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserPreferenceCreate) SaveX(ctx context.Context) *UserPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserPreferenceCreate) defaults() {
	if _, ok := _c.mutation.PreferredDetailLevel(); !ok {
		v := userpreference.DefaultPreferredDetailLevel
		_c.mutation.SetPreferredDetailLevel(v)
	}
	if _, ok := _c.mutation.FeedbackCount(); !ok {
		v := userpreference.DefaultFeedbackCount
		_c.mutation.SetFeedbackCount(v)
	}
	if _, ok := _c.mutation.AverageRating(); !ok {
		v := userpreference.DefaultAverageRating
		_c.mutation.SetAverageRating(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := userpreference.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserPreferenceCreate) check() error {
	if _, ok := _c.mutation.UserIdentifier(); !ok {
		return &ValidationError{Name: "user_identifier", err: errors.New(`ent: missing required field "UserPreference.user_identifier"`)}
	}
	if _, ok := _c.mutation.PreferredDetailLevel(); !ok {
		return &ValidationError{Name: "preferred_detail_level", err: errors.New(`ent: missing required field "UserPreference.preferred_detail_level"`)}
	}
	if _, ok := _c.mutation.FeedbackCount(); !ok {
		return &ValidationError{Name: "feedback_count", err: errors.New(`ent: missing required field "UserPreference.feedback_count"`)}
	}
	if _, ok := _c.mutation.AverageRating(); !ok {
		return &ValidationError{Name: "average_rating", err: errors.New(`ent: missing required field "UserPreference.average_rating"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "UserPreference.last_updated"`)}
	}
	return nil
}

func (_c *UserPreferenceCreate) sqlSave(ctx context.Context) (*UserPreference, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserPreferenceCreate) createSpec() (*UserPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &UserPreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userpreference.Table, sqlgraph.NewFieldSpec(userpreference.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserIdentifier(); ok {
		_spec.SetField(userpreference.FieldUserIdentifier, field.TypeString, value)
		_node.UserIdentifier = value
	}
	if value, ok := _c.mutation.PreferredDetailLevel(); ok {
		_spec.SetField(userpreference.FieldPreferredDetailLevel, field.TypeString, value)
		_node.PreferredDetailLevel = value
	}
	if value, ok := _c.mutation.FavoriteKinds(); ok {
		_spec.SetField(userpreference.FieldFavoriteKinds, field.TypeJSON, value)
		_node.FavoriteKinds = value
	}
	if value, ok := _c.mutation.CommonComplaints(); ok {
		_spec.SetField(userpreference.FieldCommonComplaints, field.TypeJSON, value)
		_node.CommonComplaints = value
	}
	if value, ok := _c.mutation.ImprovementFocusAreas(); ok {
		_spec.SetField(userpreference.FieldImprovementFocusAreas, field.TypeJSON, value)
		_node.ImprovementFocusAreas = value
	}
	if value, ok := _c.mutation.FeedbackCount(); ok {
		_spec.SetField(userpreference.FieldFeedbackCount, field.TypeInt, value)
		_node.FeedbackCount = value
	}
	if value, ok := _c.mutation.AverageRating(); ok {
		_spec.SetField(userpreference.FieldAverageRating, field.TypeFloat64, value)
		_node.AverageRating = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(userpreference.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// UserPreferenceCreateBulk is the builder for creating many UserPreference entities in bulk.
type UserPreferenceCreateBulk struct {
	config
	err      error
	builders []*UserPreferenceCreate
}

// Save creates the UserPreference entities in the database.
func (_c *UserPreferenceCreateBulk) Save(ctx context.Context) ([]*UserPreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserPreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserPreferenceMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *UserPreferenceCreateBulk) SaveX(ctx context.Context) []*UserPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
