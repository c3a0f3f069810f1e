// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/scribeflow/scribeflow/ent/predicate"
	"github.com/scribeflow/scribeflow/ent/transcriptsegment"
)

// TranscriptSegmentUpdate is the builder for updating TranscriptSegment entities.
type TranscriptSegmentUpdate struct {
	config
	hooks     []Hook
	mutation  *TranscriptSegmentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the TranscriptSegmentUpdate builder.
func (_u *TranscriptSegmentUpdate) Where(ps ...predicate.TranscriptSegment) *TranscriptSegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSpeakerID sets the "speaker_id" field.
func (_u *TranscriptSegmentUpdate) SetSpeakerID(v string) *TranscriptSegmentUpdate {
	_u.mutation.SetSpeakerID(v)
	return _u
}

// SetNillableSpeakerID sets the "speaker_id" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableSpeakerID(v *string) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetSpeakerID(*v)
	}
	return _u
}

// ClearSpeakerID clears the value of the "speaker_id" field.
func (_u *TranscriptSegmentUpdate) ClearSpeakerID() *TranscriptSegmentUpdate {
	_u.mutation.ClearSpeakerID()
	return _u
}

// SetStartSeconds sets the "start_seconds" field.
func (_u *TranscriptSegmentUpdate) SetStartSeconds(v float64) *TranscriptSegmentUpdate {
	_u.mutation.ResetStartSeconds()
	_u.mutation.SetStartSeconds(v)
	return _u
}

// SetNillableStartSeconds sets the "start_seconds" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableStartSeconds(v *float64) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetStartSeconds(*v)
	}
	return _u
}

// AddStartSeconds adds value to the "start_seconds" field.
func (_u *TranscriptSegmentUpdate) AddStartSeconds(v float64) *TranscriptSegmentUpdate {
	_u.mutation.AddStartSeconds(v)
	return _u
}

// SetEndSeconds sets the "end_seconds" field.
func (_u *TranscriptSegmentUpdate) SetEndSeconds(v float64) *TranscriptSegmentUpdate {
	_u.mutation.ResetEndSeconds()
	_u.mutation.SetEndSeconds(v)
	return _u
}

// SetNillableEndSeconds sets the "end_seconds" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableEndSeconds(v *float64) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetEndSeconds(*v)
	}
	return _u
}

// AddEndSeconds adds value to the "end_seconds" field.
func (_u *TranscriptSegmentUpdate) AddEndSeconds(v float64) *TranscriptSegmentUpdate {
	_u.mutation.AddEndSeconds(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *TranscriptSegmentUpdate) SetContent(v string) *TranscriptSegmentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableContent(v *string) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranscriptSegmentUpdate) SetConfidence(v float64) *TranscriptSegmentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableConfidence(v *float64) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranscriptSegmentUpdate) AddConfidence(v float64) *TranscriptSegmentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TranscriptSegmentUpdate) ClearConfidence() *TranscriptSegmentUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetWords sets the "words" field.
func (_u *TranscriptSegmentUpdate) SetWords(v []map[string]interface{}) *TranscriptSegmentUpdate {
	_u.mutation.SetWords(v)
	return _u
}

// AppendWords appends value to the "words" field.
func (_u *TranscriptSegmentUpdate) AppendWords(v []map[string]interface{}) *TranscriptSegmentUpdate {
	_u.mutation.AppendWords(v)
	return _u
}

// ClearWords clears the value of the "words" field.
func (_u *TranscriptSegmentUpdate) ClearWords() *TranscriptSegmentUpdate {
	_u.mutation.ClearWords()
	return _u
}

// SetIsEdited sets the "is_edited" field.
func (_u *TranscriptSegmentUpdate) SetIsEdited(v bool) *TranscriptSegmentUpdate {
	_u.mutation.SetIsEdited(v)
	return _u
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableIsEdited(v *bool) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetIsEdited(*v)
	}
	return _u
}

// SetOriginalContent sets the "original_content" field.
func (_u *TranscriptSegmentUpdate) SetOriginalContent(v string) *TranscriptSegmentUpdate {
	_u.mutation.SetOriginalContent(v)
	return _u
}

// SetNillableOriginalContent sets the "original_content" field if the given value is not nil.
func (_u *TranscriptSegmentUpdate) SetNillableOriginalContent(v *string) *TranscriptSegmentUpdate {
	if v != nil {
		_u.SetOriginalContent(*v)
	}
	return _u
}

// ClearOriginalContent clears the value of the "original_content" field.
func (_u *TranscriptSegmentUpdate) ClearOriginalContent() *TranscriptSegmentUpdate {
	_u.mutation.ClearOriginalContent()
	return _u
}

// Mutation returns the TranscriptSegmentMutation object of the builder.
func (_u *TranscriptSegmentUpdate) Mutation() *TranscriptSegmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptSegmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptSegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptSegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptSegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptSegmentUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptSegment.task"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *TranscriptSegmentUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *TranscriptSegmentUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *TranscriptSegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptsegment.Table, transcriptsegment.Columns, sqlgraph.NewFieldSpec(transcriptsegment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SpeakerID(); ok {
		_spec.SetField(transcriptsegment.FieldSpeakerID, field.TypeString, value)
	}
	if _u.mutation.SpeakerIDCleared() {
		_spec.ClearField(transcriptsegment.FieldSpeakerID, field.TypeString)
	}
	if value, ok := _u.mutation.StartSeconds(); ok {
		_spec.SetField(transcriptsegment.FieldStartSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartSeconds(); ok {
		_spec.AddField(transcriptsegment.FieldStartSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndSeconds(); ok {
		_spec.SetField(transcriptsegment.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndSeconds(); ok {
		_spec.AddField(transcriptsegment.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(transcriptsegment.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(transcriptsegment.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Words(); ok {
		_spec.SetField(transcriptsegment.FieldWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcriptsegment.FieldWords, value)
		})
	}
	if _u.mutation.WordsCleared() {
		_spec.ClearField(transcriptsegment.FieldWords, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsEdited(); ok {
		_spec.SetField(transcriptsegment.FieldIsEdited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OriginalContent(); ok {
		_spec.SetField(transcriptsegment.FieldOriginalContent, field.TypeString, value)
	}
	if _u.mutation.OriginalContentCleared() {
		_spec.ClearField(transcriptsegment.FieldOriginalContent, field.TypeString)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptSegmentUpdateOne is the builder for updating a single TranscriptSegment entity.
type TranscriptSegmentUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *TranscriptSegmentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetSpeakerID sets the "speaker_id" field.
func (_u *TranscriptSegmentUpdateOne) SetSpeakerID(v string) *TranscriptSegmentUpdateOne {
	_u.mutation.SetSpeakerID(v)
	return _u
}

// SetNillableSpeakerID sets the "speaker_id" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableSpeakerID(v *string) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetSpeakerID(*v)
	}
	return _u
}

// ClearSpeakerID clears the value of the "speaker_id" field.
func (_u *TranscriptSegmentUpdateOne) ClearSpeakerID() *TranscriptSegmentUpdateOne {
	_u.mutation.ClearSpeakerID()
	return _u
}

// SetStartSeconds sets the "start_seconds" field.
func (_u *TranscriptSegmentUpdateOne) SetStartSeconds(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.ResetStartSeconds()
	_u.mutation.SetStartSeconds(v)
	return _u
}

// SetNillableStartSeconds sets the "start_seconds" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableStartSeconds(v *float64) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetStartSeconds(*v)
	}
	return _u
}

// AddStartSeconds adds value to the "start_seconds" field.
func (_u *TranscriptSegmentUpdateOne) AddStartSeconds(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.AddStartSeconds(v)
	return _u
}

// SetEndSeconds sets the "end_seconds" field.
func (_u *TranscriptSegmentUpdateOne) SetEndSeconds(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.ResetEndSeconds()
	_u.mutation.SetEndSeconds(v)
	return _u
}

// SetNillableEndSeconds sets the "end_seconds" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableEndSeconds(v *float64) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetEndSeconds(*v)
	}
	return _u
}

// AddEndSeconds adds value to the "end_seconds" field.
func (_u *TranscriptSegmentUpdateOne) AddEndSeconds(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.AddEndSeconds(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *TranscriptSegmentUpdateOne) SetContent(v string) *TranscriptSegmentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableContent(v *string) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TranscriptSegmentUpdateOne) SetConfidence(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableConfidence(v *float64) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TranscriptSegmentUpdateOne) AddConfidence(v float64) *TranscriptSegmentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TranscriptSegmentUpdateOne) ClearConfidence() *TranscriptSegmentUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetWords sets the "words" field.
func (_u *TranscriptSegmentUpdateOne) SetWords(v []map[string]interface{}) *TranscriptSegmentUpdateOne {
	_u.mutation.SetWords(v)
	return _u
}

// AppendWords appends value to the "words" field.
func (_u *TranscriptSegmentUpdateOne) AppendWords(v []map[string]interface{}) *TranscriptSegmentUpdateOne {
	_u.mutation.AppendWords(v)
	return _u
}

// ClearWords clears the value of the "words" field.
func (_u *TranscriptSegmentUpdateOne) ClearWords() *TranscriptSegmentUpdateOne {
	_u.mutation.ClearWords()
	return _u
}

// SetIsEdited sets the "is_edited" field.
func (_u *TranscriptSegmentUpdateOne) SetIsEdited(v bool) *TranscriptSegmentUpdateOne {
	_u.mutation.SetIsEdited(v)
	return _u
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableIsEdited(v *bool) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetIsEdited(*v)
	}
	return _u
}

// SetOriginalContent sets the "original_content" field.
func (_u *TranscriptSegmentUpdateOne) SetOriginalContent(v string) *TranscriptSegmentUpdateOne {
	_u.mutation.SetOriginalContent(v)
	return _u
}

// SetNillableOriginalContent sets the "original_content" field if the given value is not nil.
func (_u *TranscriptSegmentUpdateOne) SetNillableOriginalContent(v *string) *TranscriptSegmentUpdateOne {
	if v != nil {
		_u.SetOriginalContent(*v)
	}
	return _u
}

// ClearOriginalContent clears the value of the "original_content" field.
func (_u *TranscriptSegmentUpdateOne) ClearOriginalContent() *TranscriptSegmentUpdateOne {
	_u.mutation.ClearOriginalContent()
	return _u
}

// Mutation returns the TranscriptSegmentMutation object of the builder.
func (_u *TranscriptSegmentUpdateOne) Mutation() *TranscriptSegmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranscriptSegmentUpdate builder.
func (_u *TranscriptSegmentUpdateOne) Where(ps ...predicate.TranscriptSegment) *TranscriptSegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptSegmentUpdateOne) Select(field string, fields ...string) *TranscriptSegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptSegment entity.
func (_u *TranscriptSegmentUpdateOne) Save(ctx context.Context) (*TranscriptSegment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptSegmentUpdateOne) SaveX(ctx context.Context) *TranscriptSegment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptSegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptSegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptSegmentUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptSegment.task"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *TranscriptSegmentUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *TranscriptSegmentUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *TranscriptSegmentUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptSegment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptsegment.Table, transcriptsegment.Columns, sqlgraph.NewFieldSpec(transcriptsegment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptSegment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptsegment.FieldID)
		for _, f := range fields {
			if !transcriptsegment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptsegment.FieldID {
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
	if value, ok := _u.mutation.SpeakerID(); ok {
		_spec.SetField(transcriptsegment.FieldSpeakerID, field.TypeString, value)
	}
	if _u.mutation.SpeakerIDCleared() {
		_spec.ClearField(transcriptsegment.FieldSpeakerID, field.TypeString)
	}
	if value, ok := _u.mutation.StartSeconds(); ok {
		_spec.SetField(transcriptsegment.FieldStartSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartSeconds(); ok {
		_spec.AddField(transcriptsegment.FieldStartSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndSeconds(); ok {
		_spec.SetField(transcriptsegment.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndSeconds(); ok {
		_spec.AddField(transcriptsegment.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(transcriptsegment.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(transcriptsegment.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(transcriptsegment.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Words(); ok {
		_spec.SetField(transcriptsegment.FieldWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcriptsegment.FieldWords, value)
		})
	}
	if _u.mutation.WordsCleared() {
		_spec.ClearField(transcriptsegment.FieldWords, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsEdited(); ok {
		_spec.SetField(transcriptsegment.FieldIsEdited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OriginalContent(); ok {
		_spec.SetField(transcriptsegment.FieldOriginalContent, field.TypeString, value)
	}
	if _u.mutation.OriginalContentCleared() {
		_spec.ClearField(transcriptsegment.FieldOriginalContent, field.TypeString)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &TranscriptSegment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
