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
	"github.com/abhisek/diagen/ent/chatmessage"
	"github.com/abhisek/diagen/ent/chatsession"
	"github.com/abhisek/diagen/ent/diagramstate"
	"github.com/abhisek/diagen/ent/predicate"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOriginalPrompt sets the "original_prompt" field.
func (_u *ChatSessionUpdate) SetOriginalPrompt(v string) *ChatSessionUpdate {
	_u.mutation.SetOriginalPrompt(v)
	return _u
}

// SetNillableOriginalPrompt sets the "original_prompt" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableOriginalPrompt(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetOriginalPrompt(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *ChatSessionUpdate) SetLastActivity(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableLastActivity(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChatSessionUpdate) AddMessageIDs(ids ...int) *ChatSessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChatSessionUpdate) AddMessages(v ...*ChatMessage) *ChatSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddDiagramIDs adds the "diagrams" edge to the DiagramState entity by IDs.
func (_u *ChatSessionUpdate) AddDiagramIDs(ids ...int) *ChatSessionUpdate {
	_u.mutation.AddDiagramIDs(ids...)
	return _u
}

// AddDiagrams adds the "diagrams" edges to the DiagramState entity.
func (_u *ChatSessionUpdate) AddDiagrams(v ...*DiagramState) *ChatSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDiagramIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChatSessionUpdate) ClearMessages() *ChatSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChatSessionUpdate) RemoveMessageIDs(ids ...int) *ChatSessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChatSessionUpdate) RemoveMessages(v ...*ChatMessage) *ChatSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearDiagrams clears all "diagrams" edges to the DiagramState entity.
func (_u *ChatSessionUpdate) ClearDiagrams() *ChatSessionUpdate {
	_u.mutation.ClearDiagrams()
	return _u
}

// RemoveDiagramIDs removes the "diagrams" edge to DiagramState entities by IDs.
func (_u *ChatSessionUpdate) RemoveDiagramIDs(ids ...int) *ChatSessionUpdate {
	_u.mutation.RemoveDiagramIDs(ids...)
	return _u
}

// RemoveDiagrams removes "diagrams" edges to DiagramState entities.
func (_u *ChatSessionUpdate) RemoveDiagrams(v ...*DiagramState) *ChatSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDiagramIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalPrompt(); ok {
		_spec.SetField(chatsession.FieldOriginalPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(chatsession.FieldLastActivity, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DiagramsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDiagramsIDs(); len(nodes) > 0 && !_u.mutation.DiagramsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiagramsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetOriginalPrompt sets the "original_prompt" field.
func (_u *ChatSessionUpdateOne) SetOriginalPrompt(v string) *ChatSessionUpdateOne {
	_u.mutation.SetOriginalPrompt(v)
	return _u
}

// SetNillableOriginalPrompt sets the "original_prompt" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableOriginalPrompt(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetOriginalPrompt(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *ChatSessionUpdateOne) SetLastActivity(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableLastActivity(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChatSessionUpdateOne) AddMessageIDs(ids ...int) *ChatSessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChatSessionUpdateOne) AddMessages(v ...*ChatMessage) *ChatSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddDiagramIDs adds the "diagrams" edge to the DiagramState entity by IDs.
func (_u *ChatSessionUpdateOne) AddDiagramIDs(ids ...int) *ChatSessionUpdateOne {
	_u.mutation.AddDiagramIDs(ids...)
	return _u
}

// AddDiagrams adds the "diagrams" edges to the DiagramState entity.
func (_u *ChatSessionUpdateOne) AddDiagrams(v ...*DiagramState) *ChatSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDiagramIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChatSessionUpdateOne) ClearMessages() *ChatSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChatSessionUpdateOne) RemoveMessageIDs(ids ...int) *ChatSessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChatSessionUpdateOne) RemoveMessages(v ...*ChatMessage) *ChatSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearDiagrams clears all "diagrams" edges to the DiagramState entity.
func (_u *ChatSessionUpdateOne) ClearDiagrams() *ChatSessionUpdateOne {
	_u.mutation.ClearDiagrams()
	return _u
}

// RemoveDiagramIDs removes the "diagrams" edge to DiagramState entities by IDs.
func (_u *ChatSessionUpdateOne) RemoveDiagramIDs(ids ...int) *ChatSessionUpdateOne {
	_u.mutation.RemoveDiagramIDs(ids...)
	return _u
}

// RemoveDiagrams removes "diagrams" edges to DiagramState entities.
func (_u *ChatSessionUpdateOne) RemoveDiagrams(v ...*DiagramState) *ChatSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDiagramIDs(ids...)
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
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
	if value, ok := _u.mutation.OriginalPrompt(); ok {
		_spec.SetField(chatsession.FieldOriginalPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(chatsession.FieldLastActivity, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DiagramsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDiagramsIDs(); len(nodes) > 0 && !_u.mutation.DiagramsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiagramsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
