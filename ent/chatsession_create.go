// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/chatmessage"
	"github.com/abhisek/diagen/ent/chatsession"
	"github.com/abhisek/diagen/ent/diagramstate"
)

// ChatSessionCreate is the builder for creating a ChatSession entity.
type ChatSessionCreate struct {
	config
	mutation *ChatSessionMutation
	hooks    []Hook
}

// SetOriginalPrompt sets the "original_prompt" field.
func (_c *ChatSessionCreate) SetOriginalPrompt(v string) *ChatSessionCreate {
	_c.mutation.SetOriginalPrompt(v)
	return _c
}

// SetNillableOriginalPrompt sets the "original_prompt" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableOriginalPrompt(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetOriginalPrompt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatSessionCreate) SetCreatedAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableCreatedAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *ChatSessionCreate) SetLastActivity(v time.Time) *ChatSessionCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableLastActivity(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatSessionCreate) SetID(v string) *ChatSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_c *ChatSessionCreate) AddMessageIDs(ids ...int) *ChatSessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_c *ChatSessionCreate) AddMessages(v ...*ChatMessage) *ChatSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddDiagramIDs adds the "diagrams" edge to the DiagramState entity by IDs.
func (_c *ChatSessionCreate) AddDiagramIDs(ids ...int) *ChatSessionCreate {
	_c.mutation.AddDiagramIDs(ids...)
	return _c
}

// AddDiagrams adds the "diagrams" edges to the DiagramState entity.
func (_c *ChatSessionCreate) AddDiagrams(v ...*DiagramState) *ChatSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDiagramIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_c *ChatSessionCreate) Mutation() *ChatSessionMutation {
	return _c.mutation
}

// Save creates the ChatSession in the database.
func (_c *ChatSessionCreate) Save(ctx context.Context) (*ChatSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatSessionCreate) SaveX(ctx context.Context) *ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatSessionCreate) defaults() {
	if _, ok := _c.mutation.OriginalPrompt(); !ok {
		v := chatsession.DefaultOriginalPrompt
		_c.mutation.SetOriginalPrompt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := chatsession.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatSessionCreate) check() error {
	if _, ok := _c.mutation.OriginalPrompt(); !ok {
		return &ValidationError{Name: "original_prompt", err: errors.New(`ent: missing required field "ChatSession.original_prompt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatSession.created_at"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "ChatSession.last_activity"`)}
	}
	return nil
}

func (_c *ChatSessionCreate) sqlSave(ctx context.Context) (*ChatSession, error) {
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
			return nil, fmt.Errorf("unexpected ChatSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatSessionCreate) createSpec() (*ChatSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatsession.Table, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OriginalPrompt(); ok {
		_spec.SetField(chatsession.FieldOriginalPrompt, field.TypeString, value)
		_node.OriginalPrompt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(chatsession.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MessagesTable,
			Columns: []string{chatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DiagramsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.DiagramsTable,
			Columns: []string{chatsession.DiagramsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagramstate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChatSessionCreateBulk is the builder for creating many ChatSession entities in bulk.
type ChatSessionCreateBulk struct {
	config
	err      error
	builders []*ChatSessionCreate
}

// Save creates the ChatSession entities in the database.
func (_c *ChatSessionCreateBulk) Save(ctx context.Context) ([]*ChatSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatSessionMutation)
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
func (_c *ChatSessionCreateBulk) SaveX(ctx context.Context) []*ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
