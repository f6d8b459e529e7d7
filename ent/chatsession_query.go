// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/diagen/ent/chatmessage"
	"github.com/abhisek/diagen/ent/chatsession"
	"github.com/abhisek/diagen/ent/diagramstate"
	"github.com/abhisek/diagen/ent/predicate"
)

// ChatSessionQuery is the builder for querying ChatSession entities.
type ChatSessionQuery struct {
	config
	ctx          *QueryContext
	order        []chatsession.OrderOption
	inters       []Interceptor
	predicates   []predicate.ChatSession
	withMessages *ChatMessageQuery
	withDiagrams *DiagramStateQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ChatSessionQuery builder.
func (_q *ChatSessionQuery) Where(ps ...predicate.ChatSession) *ChatSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ChatSessionQuery) Limit(limit int) *ChatSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ChatSessionQuery) Offset(offset int) *ChatSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ChatSessionQuery) Unique(unique bool) *ChatSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ChatSessionQuery) Order(o ...chatsession.OrderOption) *ChatSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *ChatSessionQuery) QueryMessages() *ChatMessageQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatsession.Table, chatsession.FieldID, selector),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatsession.MessagesTable, chatsession.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDiagrams chains the current query on the "diagrams" edge.
func (_q *ChatSessionQuery) QueryDiagrams() *DiagramStateQuery {
	query := (&DiagramStateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(chatsession.Table, chatsession.FieldID, selector),
			sqlgraph.To(diagramstate.Table, diagramstate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatsession.DiagramsTable, chatsession.DiagramsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ChatSession entity from the query.
// Returns a *NotFoundError when no ChatSession was found.
func (_q *ChatSessionQuery) First(ctx context.Context) (*ChatSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{chatsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ChatSessionQuery) FirstX(ctx context.Context) *ChatSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ChatSession ID from the query.
// Returns a *NotFoundError when no ChatSession ID was found.
func (_q *ChatSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{chatsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ChatSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ChatSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ChatSession entity is found.
// Returns a *NotFoundError when no ChatSession entities are found.
func (_q *ChatSessionQuery) Only(ctx context.Context) (*ChatSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{chatsession.Label}
	default:
		return nil, &NotSingularError{chatsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ChatSessionQuery) OnlyX(ctx context.Context) *ChatSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ChatSession ID in the query.
// Returns a *NotSingularError when more than one ChatSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ChatSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{chatsession.Label}
	default:
		err = &NotSingularError{chatsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ChatSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ChatSessions.
func (_q *ChatSessionQuery) All(ctx context.Context) ([]*ChatSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ChatSession, *ChatSessionQuery]()
	return withInterceptors[[]*ChatSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ChatSessionQuery) AllX(ctx context.Context) []*ChatSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ChatSession IDs.
func (_q *ChatSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(chatsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ChatSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ChatSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ChatSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ChatSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ChatSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ChatSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ChatSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ChatSessionQuery) Clone() *ChatSessionQuery {
	if _q == nil {
		return nil
	}
	return &ChatSessionQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]chatsession.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.ChatSession{}, _q.predicates...),
		withMessages: _q.withMessages.Clone(),
		withDiagrams: _q.withDiagrams.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatSessionQuery) WithMessages(opts ...func(*ChatMessageQuery)) *ChatSessionQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithDiagrams tells the query-builder to eager-load the nodes that are connected to
// the "diagrams" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChatSessionQuery) WithDiagrams(opts ...func(*DiagramStateQuery)) *ChatSessionQuery {
	query := (&DiagramStateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDiagrams = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OriginalPrompt string `json:"original_prompt,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ChatSession.Query().
//		GroupBy(chatsession.FieldOriginalPrompt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ChatSessionQuery) GroupBy(field string, fields ...string) *ChatSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ChatSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = chatsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OriginalPrompt string `json:"original_prompt,omitempty"`
//	}
//
//	client.ChatSession.Query().
//		Select(chatsession.FieldOriginalPrompt).
//		Scan(ctx, &v)
func (_q *ChatSessionQuery) Select(fields ...string) *ChatSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ChatSessionSelect{ChatSessionQuery: _q}
	sbuild.label = chatsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ChatSessionSelect configured with the given aggregations.
func (_q *ChatSessionQuery) Aggregate(fns ...AggregateFunc) *ChatSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ChatSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !chatsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ChatSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ChatSession, error) {
	var (
		nodes       = []*ChatSession{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withMessages != nil,
			_q.withDiagrams != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ChatSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ChatSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *ChatSession) { n.Edges.Messages = []*ChatMessage{} },
			func(n *ChatSession, e *ChatMessage) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDiagrams; query != nil {
		if err := _q.loadDiagrams(ctx, query, nodes,
			func(n *ChatSession) { n.Edges.Diagrams = []*DiagramState{} },
			func(n *ChatSession, e *DiagramState) { n.Edges.Diagrams = append(n.Edges.Diagrams, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ChatSessionQuery) loadMessages(ctx context.Context, query *ChatMessageQuery, nodes []*ChatSession, init func(*ChatSession), assign func(*ChatSession, *ChatMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ChatSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chatmessage.FieldSessionID)
	}
	query.Where(predicate.ChatMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chatsession.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChatSessionQuery) loadDiagrams(ctx context.Context, query *DiagramStateQuery, nodes []*ChatSession, init func(*ChatSession), assign func(*ChatSession, *DiagramState)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ChatSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(diagramstate.FieldSessionID)
	}
	query.Where(predicate.DiagramState(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(chatsession.DiagramsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ChatSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ChatSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for i := range fields {
			if fields[i] != chatsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ChatSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(chatsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = chatsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ChatSessionGroupBy is the group-by builder for ChatSession entities.
type ChatSessionGroupBy struct {
	selector
	build *ChatSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ChatSessionGroupBy) Aggregate(fns ...AggregateFunc) *ChatSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ChatSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChatSessionQuery, *ChatSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ChatSessionGroupBy) sqlScan(ctx context.Context, root *ChatSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ChatSessionSelect is the builder for selecting fields of ChatSession entities.
type ChatSessionSelect struct {
	*ChatSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ChatSessionSelect) Aggregate(fns ...AggregateFunc) *ChatSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ChatSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChatSessionQuery, *ChatSessionSelect](ctx, _s.ChatSessionQuery, _s, _s.inters, v)
}

func (_s *ChatSessionSelect) sqlScan(ctx context.Context, root *ChatSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
