// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/chatsession"
	"github.com/abhisek/diagen/ent/diagramstate"
	"github.com/abhisek/diagen/ent/predicate"
)

// DiagramStateUpdate is the builder for updating DiagramState entities.
type DiagramStateUpdate struct {
	config
	hooks    []Hook
	mutation *DiagramStateMutation
}

// Where appends a list predicates to the DiagramStateUpdate builder.
func (_u *DiagramStateUpdate) Where(ps ...predicate.DiagramState) *DiagramStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiagramStateUpdate) SetSessionID(v string) *DiagramStateUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagramStateUpdate) SetNillableSessionID(v *string) *DiagramStateUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DiagramStateUpdate) SetKind(v string) *DiagramStateUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DiagramStateUpdate) SetNillableKind(v *string) *DiagramStateUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DiagramStateUpdate) SetSource(v string) *DiagramStateUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DiagramStateUpdate) SetNillableSource(v *string) *DiagramStateUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *DiagramStateUpdate) SetVersion(v int) *DiagramStateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *DiagramStateUpdate) SetNillableVersion(v *int) *DiagramStateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *DiagramStateUpdate) AddVersion(v int) *DiagramStateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *DiagramStateUpdate) SetLastUpdated(v time.Time) *DiagramStateUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *DiagramStateUpdate) SetNillableLastUpdated(v *time.Time) *DiagramStateUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *DiagramStateUpdate) SetSession(v *ChatSession) *DiagramStateUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the DiagramStateMutation object of the builder.
func (_u *DiagramStateUpdate) Mutation() *DiagramStateMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *DiagramStateUpdate) ClearSession() *DiagramStateUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagramStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagramStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagramStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagramStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagramStateUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiagramState.session"`)
	}
	return nil
}

func (_u *DiagramStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagramstate.Table, diagramstate.Columns, sqlgraph.NewFieldSpec(diagramstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(diagramstate.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(diagramstate.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(diagramstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(diagramstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(diagramstate.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   diagramstate.SessionTable,
			Columns: []string{diagramstate.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   diagramstate.SessionTable,
			Columns: []string{diagramstate.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagramstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagramStateUpdateOne is the builder for updating a single DiagramState entity.
type DiagramStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagramStateMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DiagramStateUpdateOne) SetSessionID(v string) *DiagramStateUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagramStateUpdateOne) SetNillableSessionID(v *string) *DiagramStateUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DiagramStateUpdateOne) SetKind(v string) *DiagramStateUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DiagramStateUpdateOne) SetNillableKind(v *string) *DiagramStateUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DiagramStateUpdateOne) SetSource(v string) *DiagramStateUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DiagramStateUpdateOne) SetNillableSource(v *string) *DiagramStateUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *DiagramStateUpdateOne) SetVersion(v int) *DiagramStateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *DiagramStateUpdateOne) SetNillableVersion(v *int) *DiagramStateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *DiagramStateUpdateOne) AddVersion(v int) *DiagramStateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *DiagramStateUpdateOne) SetLastUpdated(v time.Time) *DiagramStateUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *DiagramStateUpdateOne) SetNillableLastUpdated(v *time.Time) *DiagramStateUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *DiagramStateUpdateOne) SetSession(v *ChatSession) *DiagramStateUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the DiagramStateMutation object of the builder.
func (_u *DiagramStateUpdateOne) Mutation() *DiagramStateMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *DiagramStateUpdateOne) ClearSession() *DiagramStateUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the DiagramStateUpdate builder.
func (_u *DiagramStateUpdateOne) Where(ps ...predicate.DiagramState) *DiagramStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagramStateUpdateOne) Select(field string, fields ...string) *DiagramStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagramState entity.
func (_u *DiagramStateUpdateOne) Save(ctx context.Context) (*DiagramState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagramStateUpdateOne) SaveX(ctx context.Context) *DiagramState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagramStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagramStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagramStateUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiagramState.session"`)
	}
	return nil
}

func (_u *DiagramStateUpdateOne) sqlSave(ctx context.Context) (_node *DiagramState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagramstate.Table, diagramstate.Columns, sqlgraph.NewFieldSpec(diagramstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagramState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagramstate.FieldID)
		for _, f := range fields {
			if !diagramstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagramstate.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(diagramstate.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(diagramstate.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(diagramstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(diagramstate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(diagramstate.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   diagramstate.SessionTable,
			Columns: []string{diagramstate.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   diagramstate.SessionTable,
			Columns: []string{diagramstate.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DiagramState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagramstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
