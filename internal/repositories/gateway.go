package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
)

// immutableColumns are never overwritten by Update.
var immutableColumns = map[string]struct{}{
	"id":         {},
	"created_at": {},
	"updated_at": {},
}

// initializer is implemented by entities that carry an id and timestamps.
type initializer interface {
	Init(now time.Time)
	Touch(now time.Time)
}

// FieldError is returned by Update when a change-set value cannot be
// assigned to the declared field type.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Gateway performs the create, update and delete operations for every
// entity type. Each call runs in its own transaction which is rolled back
// on any failure. Constraint violations are reported as ErrUniqueViolation
// or ErrForeignKeyViolation.
type Gateway struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
	now     func() time.Time
}

// NewGateway creates a gateway for the given goqu dialect ("postgres" or "sqlite3").
func NewGateway(db *sqlx.DB, dialect string) *Gateway {
	return &Gateway{
		db:      db,
		dialect: goqu.Dialect(dialect),
		now:     Now,
	}
}

// Now returns the current time at the precision every supported store keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Create inserts the entities in a single transaction. Entities with an id
// and timestamps are initialized first.
func (g *Gateway) Create(ctx context.Context, entities ...models.Entity) error {
	now := g.now()
	statements := make([]statement, 0, len(entities))
	for _, e := range entities {
		if in, ok := e.(initializer); ok {
			in.Init(now)
		}
		query, args, err := g.dialect.Insert(e.TableName()).
			Rows(record(e)).
			Prepared(true).
			ToSQL()
		if err != nil {
			return err
		}
		statements = append(statements, statement{query: query, args: args})
	}
	return g.exec(ctx, statements)
}

// Update applies every change whose key names a declared, mutable column of
// the entity, then writes those columns and the advanced updated_at.
// Unknown keys are ignored.
func (g *Gateway) Update(ctx context.Context, e models.Entity, changes map[string]any) error {
	v := reflect.ValueOf(e).Elem()
	set := goqu.Record{}
	for _, c := range columnsOf(v.Type()) {
		value, ok := changes[c.name]
		if !ok {
			continue
		}
		if _, immutable := immutableColumns[c.name]; immutable {
			continue
		}
		field := v.FieldByIndex(c.index)
		if err := assign(field, value); err != nil {
			return &FieldError{Field: c.name, Err: err}
		}
		set[c.name] = field.Interface()
	}

	if in, ok := e.(initializer); ok {
		now := g.now()
		in.Touch(now)
		set["updated_at"] = now
	}
	if len(set) == 0 {
		return nil
	}

	query, args, err := g.dialect.Update(e.TableName()).
		Set(set).
		Where(goqu.Ex(e.Key())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}
	return g.exec(ctx, []statement{{query: query, args: args}})
}

// Delete removes the entity. Dependent rows are removed by the store's
// ON DELETE CASCADE foreign keys.
func (g *Gateway) Delete(ctx context.Context, e models.Entity) error {
	query, args, err := g.dialect.Delete(e.TableName()).
		Where(goqu.Ex(e.Key())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}
	return g.exec(ctx, []statement{{query: query, args: args}})
}

type statement struct {
	query string
	args  []any
}

func (g *Gateway) exec(ctx context.Context, statements []statement) (err error) {
	tx, err := g.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Errorw("failed to roll back transaction", "error", rbErr)
			}
		}
	}()

	for _, s := range statements {
		res, execErr := tx.ExecContext(ctx, s.query, s.args...)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}

		// Log with query in single line
		logger.Log.Infow("exec statement",
			"query", strings.Join(strings.Fields(s.query), " "),
			"args", s.args,
			"result", rowsAffected,
			"error", execErr,
		)

		if execErr != nil {
			return constraintError(execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return constraintError(err)
	}
	return nil
}

// Read renders every declared, non-redacted field of the entity keyed by
// column name. Timestamps are rendered as RFC 3339 text in UTC.
func Read(e models.Entity) map[string]any {
	v := reflect.ValueOf(e)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	out := make(map[string]any)
	for _, c := range columnsOf(v.Type()) {
		if c.redacted {
			continue
		}
		value := v.FieldByIndex(c.index).Interface()
		if t, ok := value.(time.Time); ok {
			value = t.UTC().Format(time.RFC3339Nano)
		}
		out[c.name] = value
	}
	return out
}

// ReadAll applies Read to each entity.
func ReadAll[T any, P interface {
	*T
	models.Entity
}](entities []T) []map[string]any {
	out := make([]map[string]any, len(entities))
	for i := range entities {
		out[i] = Read(P(&entities[i]))
	}
	return out
}

func record(e models.Entity) goqu.Record {
	v := reflect.ValueOf(e).Elem()
	rec := goqu.Record{}
	for _, c := range columnsOf(v.Type()) {
		rec[c.name] = v.FieldByIndex(c.index).Interface()
	}
	return rec
}

// assign converts value to the field's type through its JSON form, so a
// change-set decoded from a request body is type-checked on the way in.
func assign(field reflect.Value, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	target := reflect.New(field.Type())
	if err := json.Unmarshal(raw, target.Interface()); err != nil {
		return err
	}
	field.Set(target.Elem())
	return nil
}
