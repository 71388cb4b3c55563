package jsonfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"journal/internal/service"
)

const schemaURL = "https://journal.invalid/task-list.schema.json"

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// record is the on-disk shape of a task.
type record struct {
	Title        string `json:"title"`
	CreationDate int64  `json:"creation_date"`
	Done         bool   `json:"done"`
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add task list schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Decode parses store contents. Empty or whitespace-only data is an empty
// list; anything else must be a JSON array of tasks or ErrCorruptStore is
// returned.
func Decode(data []byte) ([]service.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrCorruptStore, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after task list", service.ErrCorruptStore)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", service.ErrCorruptStore, schemaMessage(err))
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrCorruptStore, err)
	}

	tasks := make([]service.Task, len(records))
	for i, r := range records {
		tasks[i] = service.Task{
			Title:        r.Title,
			CreationDate: time.Unix(r.CreationDate, 0).UTC(),
			Done:         r.Done,
		}
	}
	return tasks, nil
}

// Encode renders tasks as an indented JSON array with a trailing newline.
func Encode(tasks []service.Task) ([]byte, error) {
	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = record{
			Title:        t.Title,
			CreationDate: t.CreationDate.Unix(),
			Done:         t.Done,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal task list: %w", err)
	}
	return append(data, '\n'), nil
}

// schemaMessage reduces a schema validation error to its first leaf cause.
func schemaMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s: %s", loc, ve.Message)
}
