// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/chatsession"
	"github.com/abhisek/diagen/ent/diagramstate"
)

// DiagramStateCreate is the builder for creating a DiagramState entity.
type DiagramStateCreate struct {
	config
	mutation *DiagramStateMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DiagramStateCreate) SetSessionID(v string) *DiagramStateCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *DiagramStateCreate) SetKind(v string) *DiagramStateCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *DiagramStateCreate) SetSource(v string) *DiagramStateCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *DiagramStateCreate) SetVersion(v int) *DiagramStateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *DiagramStateCreate) SetNillableVersion(v *int) *DiagramStateCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *DiagramStateCreate) SetLastUpdated(v time.Time) *DiagramStateCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *DiagramStateCreate) SetNillableLastUpdated(v *time.Time) *DiagramStateCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_c *DiagramStateCreate) SetSession(v *ChatSession) *DiagramStateCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the DiagramStateMutation object of the builder.
func (_c *DiagramStateCreate) Mutation() *DiagramStateMutation {
	return _c.mutation
}

// Save creates the DiagramState in the database.
func (_c *DiagramStateCreate) Save(ctx context.Context) (*DiagramState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagramStateCreate) SaveX(ctx context.Context) *DiagramState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagramStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagramStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagramStateCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := diagramstate.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := diagramstate.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagramStateCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DiagramState.session_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "DiagramState.kind"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "DiagramState.source"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "DiagramState.version"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "DiagramState.last_updated"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "DiagramState.session"`)}
	}
	return nil
}

func (_c *DiagramStateCreate) sqlSave(ctx context.Context) (*DiagramState, error) {
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

func (_c *DiagramStateCreate) createSpec() (*DiagramState, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagramState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagramstate.Table, sqlgraph.NewFieldSpec(diagramstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(diagramstate.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(diagramstate.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(diagramstate.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(diagramstate.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DiagramStateCreateBulk is the builder for creating many DiagramState entities in bulk.
type DiagramStateCreateBulk struct {
	config
	err      error
	builders []*DiagramStateCreate
}

// Save creates the DiagramState entities in the database.
func (_c *DiagramStateCreateBulk) Save(ctx context.Context) ([]*DiagramState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagramState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagramStateMutation)
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
func (_c *DiagramStateCreateBulk) SaveX(ctx context.Context) []*DiagramState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagramStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagramStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
