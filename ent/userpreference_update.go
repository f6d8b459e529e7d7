// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/predicate"
	"github.com/abhisek/diagen/ent/userpreference"
)

// UserPreferenceUpdate is the builder for updating UserPreference entities.
type UserPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *UserPreferenceMutation
}

// Where appends a list predicates to the UserPreferenceUpdate builder.
func (_u *UserPreferenceUpdate) Where(ps ...predicate.UserPreference) *UserPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserIdentifier sets the "user_identifier" field.
func (_u *UserPreferenceUpdate) SetUserIdentifier(v string) *UserPreferenceUpdate {
	_u.mutation.SetUserIdentifier(v)
	return _u
}

// SetNillableUserIdentifier sets the "user_identifier" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableUserIdentifier(v *string) *UserPreferenceUpdate {
	if v != nil {
		_u.SetUserIdentifier(*v)
	}
	return _u
}

// SetPreferredDetailLevel sets the "preferred_detail_level" field.
func (_u *UserPreferenceUpdate) SetPreferredDetailLevel(v string) *UserPreferenceUpdate {
	_u.mutation.SetPreferredDetailLevel(v)
	return _u
}

// SetNillablePreferredDetailLevel sets the "preferred_detail_level" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillablePreferredDetailLevel(v *string) *UserPreferenceUpdate {
	if v != nil {
		_u.SetPreferredDetailLevel(*v)
	}
	return _u
}

// SetFavoriteKinds sets the "favorite_kinds" field.
func (_u *UserPreferenceUpdate) SetFavoriteKinds(v []string) *UserPreferenceUpdate {
	_u.mutation.SetFavoriteKinds(v)
	return _u
}

// AppendFavoriteKinds appends value to the "favorite_kinds" field.
func (_u *UserPreferenceUpdate) AppendFavoriteKinds(v []string) *UserPreferenceUpdate {
	_u.mutation.AppendFavoriteKinds(v)
	return _u
}

// ClearFavoriteKinds clears the value of the "favorite_kinds" field.
func (_u *UserPreferenceUpdate) ClearFavoriteKinds() *UserPreferenceUpdate {
	_u.mutation.ClearFavoriteKinds()
	return _u
}

// SetCommonComplaints sets the "common_complaints" field.
func (_u *UserPreferenceUpdate) SetCommonComplaints(v []string) *UserPreferenceUpdate {
	_u.mutation.SetCommonComplaints(v)
	return _u
}

// AppendCommonComplaints appends value to the "common_complaints" field.
func (_u *UserPreferenceUpdate) AppendCommonComplaints(v []string) *UserPreferenceUpdate {
	_u.mutation.AppendCommonComplaints(v)
	return _u
}

// ClearCommonComplaints clears the value of the "common_complaints" field.
func (_u *UserPreferenceUpdate) ClearCommonComplaints() *UserPreferenceUpdate {
	_u.mutation.ClearCommonComplaints()
	return _u
}

// SetImprovementFocusAreas sets the "improvement_focus_areas" field.
func (_u *UserPreferenceUpdate) SetImprovementFocusAreas(v []string) *UserPreferenceUpdate {
	_u.mutation.SetImprovementFocusAreas(v)
	return _u
}

// AppendImprovementFocusAreas appends value to the "improvement_focus_areas" field.
func (_u *UserPreferenceUpdate) AppendImprovementFocusAreas(v []string) *UserPreferenceUpdate {
	_u.mutation.AppendImprovementFocusAreas(v)
	return _u
}

// ClearImprovementFocusAreas clears the value of the "improvement_focus_areas" field.
func (_u *UserPreferenceUpdate) ClearImprovementFocusAreas() *UserPreferenceUpdate {
	_u.mutation.ClearImprovementFocusAreas()
	return _u
}

// SetFeedbackCount sets the "feedback_count" field.
func (_u *UserPreferenceUpdate) SetFeedbackCount(v int) *UserPreferenceUpdate {
	_u.mutation.ResetFeedbackCount()
	_u.mutation.SetFeedbackCount(v)
	return _u
}

// SetNillableFeedbackCount sets the "feedback_count" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableFeedbackCount(v *int) *UserPreferenceUpdate {
	if v != nil {
		_u.SetFeedbackCount(*v)
	}
	return _u
}

// AddFeedbackCount adds value to the "feedback_count" field.
func (_u *UserPreferenceUpdate) AddFeedbackCount(v int) *UserPreferenceUpdate {
	_u.mutation.AddFeedbackCount(v)
	return _u
}

// SetAverageRating sets the "average_rating" field.
func (_u *UserPreferenceUpdate) SetAverageRating(v float64) *UserPreferenceUpdate {
	_u.mutation.ResetAverageRating()
	_u.mutation.SetAverageRating(v)
	return _u
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableAverageRating(v *float64) *UserPreferenceUpdate {
	if v != nil {
		_u.SetAverageRating(*v)
	}
	return _u
}

// AddAverageRating adds value to the "average_rating" field.
func (_u *UserPreferenceUpdate) AddAverageRating(v float64) *UserPreferenceUpdate {
	_u.mutation.AddAverageRating(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *UserPreferenceUpdate) SetLastUpdated(v time.Time) *UserPreferenceUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableLastUpdated(v *time.Time) *UserPreferenceUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the UserPreferenceMutation object of the builder.
func (_u *UserPreferenceUpdate) Mutation() *UserPreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserPreferenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userpreference.Table, userpreference.Columns, sqlgraph.NewFieldSpec(userpreference.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserIdentifier(); ok {
		_spec.SetField(userpreference.FieldUserIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredDetailLevel(); ok {
		_spec.SetField(userpreference.FieldPreferredDetailLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FavoriteKinds(); ok {
		_spec.SetField(userpreference.FieldFavoriteKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFavoriteKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userpreference.FieldFavoriteKinds, value)
		})
	}
	if _u.mutation.FavoriteKindsCleared() {
		_spec.ClearField(userpreference.FieldFavoriteKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommonComplaints(); ok {
		_spec.SetField(userpreference.FieldCommonComplaints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommonComplaints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userpreference.FieldCommonComplaints, value)
		})
	}
	if _u.mutation.CommonComplaintsCleared() {
		_spec.ClearField(userpreference.FieldCommonComplaints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovementFocusAreas(); ok {
		_spec.SetField(userpreference.FieldImprovementFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovementFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userpreference.FieldImprovementFocusAreas, value)
		})
	}
	if _u.mutation.ImprovementFocusAreasCleared() {
		_spec.ClearField(userpreference.FieldImprovementFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.FeedbackCount(); ok {
		_spec.SetField(userpreference.FieldFeedbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeedbackCount(); ok {
		_spec.AddField(userpreference.FieldFeedbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageRating(); ok {
		_spec.SetField(userpreference.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageRating(); ok {
		_spec.AddField(userpreference.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(userpreference.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserPreferenceUpdateOne is the builder for updating a single UserPreference entity.
type UserPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserPreferenceMutation
}

// SetUserIdentifier sets the "user_identifier" field.
func (_u *UserPreferenceUpdateOne) SetUserIdentifier(v string) *UserPreferenceUpdateOne {
	_u.mutation.SetUserIdentifier(v)
	return _u
}

// SetNillableUserIdentifier sets the "user_identifier" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableUserIdentifier(v *string) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetUserIdentifier(*v)
	}
	return _u
}

// SetPreferredDetailLevel sets the "preferred_detail_level" field.
func (_u *UserPreferenceUpdateOne) SetPreferredDetailLevel(v string) *UserPreferenceUpdateOne {
	_u.mutation.SetPreferredDetailLevel(v)
	return _u
}

// SetNillablePreferredDetailLevel sets the "preferred_detail_level" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillablePreferredDetailLevel(v *string) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetPreferredDetailLevel(*v)
	}
	return _u
}

// SetFavoriteKinds sets the "favorite_kinds" field.
func (_u *UserPreferenceUpdateOne) SetFavoriteKinds(v []string) *UserPreferenceUpdateOne {
	_u.mutation.SetFavoriteKinds(v)
	return _u
}

// AppendFavoriteKinds appends value to the "favorite_kinds" field.
func (_u *UserPreferenceUpdateOne) AppendFavoriteKinds(v []string) *UserPreferenceUpdateOne {
	_u.mutation.AppendFavoriteKinds(v)
	return _u
}

// ClearFavoriteKinds clears the value of the "favorite_kinds" field.
func (_u *UserPreferenceUpdateOne) ClearFavoriteKinds() *UserPreferenceUpdateOne {
	_u.mutation.ClearFavoriteKinds()
	return _u
}

// SetCommonComplaints sets the "common_complaints" field.
func (_u *UserPreferenceUpdateOne) SetCommonComplaints(v []string) *UserPreferenceUpdateOne {
	_u.mutation.SetCommonComplaints(v)
	return _u
}

// AppendCommonComplaints appends value to the "common_complaints" field.
func (_u *UserPreferenceUpdateOne) AppendCommonComplaints(v []string) *UserPreferenceUpdateOne {
	_u.mutation.AppendCommonComplaints(v)
	return _u
}

// ClearCommonComplaints clears the value of the "common_complaints" field.
func (_u *UserPreferenceUpdateOne) ClearCommonComplaints() *UserPreferenceUpdateOne {
	_u.mutation.ClearCommonComplaints()
	return _u
}

// SetImprovementFocusAreas sets the "improvement_focus_areas" field.
func (_u *UserPreferenceUpdateOne) SetImprovementFocusAreas(v []string) *UserPreferenceUpdateOne {
	_u.mutation.SetImprovementFocusAreas(v)
	return _u
}

// AppendImprovementFocusAreas appends value to the "improvement_focus_areas" field.
func (_u *UserPreferenceUpdateOne) AppendImprovementFocusAreas(v []string) *UserPreferenceUpdateOne {
	_u.mutation.AppendImprovementFocusAreas(v)
	return _u
}

// ClearImprovementFocusAreas clears the value of the "improvement_focus_areas" field.
func (_u *UserPreferenceUpdateOne) ClearImprovementFocusAreas() *UserPreferenceUpdateOne {
	_u.mutation.ClearImprovementFocusAreas()
	return _u
}

// SetFeedbackCount sets the "feedback_count" field.
func (_u *UserPreferenceUpdateOne) SetFeedbackCount(v int) *UserPreferenceUpdateOne {
	_u.mutation.ResetFeedbackCount()
	_u.mutation.SetFeedbackCount(v)
	return _u
}

// SetNillableFeedbackCount sets the "feedback_count" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableFeedbackCount(v *int) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetFeedbackCount(*v)
	}
	return _u
}

// AddFeedbackCount adds value to the "feedback_count" field.
func (_u *UserPreferenceUpdateOne) AddFeedbackCount(v int) *UserPreferenceUpdateOne {
	_u.mutation.AddFeedbackCount(v)
	return _u
}

// SetAverageRating sets the "average_rating" field.
func (_u *UserPreferenceUpdateOne) SetAverageRating(v float64) *UserPreferenceUpdateOne {
	_u.mutation.ResetAverageRating()
	_u.mutation.SetAverageRating(v)
	return _u
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableAverageRating(v *float64) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetAverageRating(*v)
	}
	return _u
}

// AddAverageRating adds value to the "average_rating" field.
func (_u *UserPreferenceUpdateOne) AddAverageRating(v float64) *UserPreferenceUpdateOne {
	_u.mutation.AddAverageRating(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *UserPreferenceUpdateOne) SetLastUpdated(v time.Time) *UserPreferenceUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableLastUpdated(v *time.Time) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the UserPreferenceMutation object of the builder.
func (_u *UserPreferenceUpdateOne) Mutation() *UserPreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserPreferenceUpdate builder.
func (_u *UserPreferenceUpdateOne) Where(ps ...predicate.UserPreference) *UserPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserPreferenceUpdateOne) Select(field string, fields ...string) *UserPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserPreference entity.
func (_u *UserPreferenceUpdateOne) Save(ctx context.Context) (*UserPreference, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPreferenceUpdateOne) SaveX(ctx context.Context) *UserPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *UserPreference, err error) {
	_spec := sqlgraph.NewUpdateSpec(userpreference.Table, userpreference.Columns, sqlgraph.NewFieldSpec(userpreference.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userpreference.FieldID)
		for _, f := range fields {
			if !userpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userpreference.FieldID {
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
	if value, ok := _u.mutation.UserIdentifier(); ok {
		_spec.SetField(userpreference.FieldUserIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredDetailLevel(); ok {
		_spec.SetField(userpreference.FieldPreferredDetailLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FavoriteKinds(); ok {
		_spec.SetField(userpreference.FieldFavoriteKinds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFavoriteKinds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userpreference.FieldFavoriteKinds, value)
		})
	}
	if _u.mutation.FavoriteKindsCleared() {
		_spec.ClearField(userpreference.FieldFavoriteKinds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommonComplaints(); ok {
		_spec.SetField(userpreference.FieldCommonComplaints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommonComplaints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userpreference.FieldCommonComplaints, value)
		})
	}
	if _u.mutation.CommonComplaintsCleared() {
		_spec.ClearField(userpreference.FieldCommonComplaints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovementFocusAreas(); ok {
		_spec.SetField(userpreference.FieldImprovementFocusAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovementFocusAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userpreference.FieldImprovementFocusAreas, value)
		})
	}
	if _u.mutation.ImprovementFocusAreasCleared() {
		_spec.ClearField(userpreference.FieldImprovementFocusAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.FeedbackCount(); ok {
		_spec.SetField(userpreference.FieldFeedbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeedbackCount(); ok {
		_spec.AddField(userpreference.FieldFeedbackCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageRating(); ok {
		_spec.SetField(userpreference.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageRating(); ok {
		_spec.AddField(userpreference.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(userpreference.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &UserPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
