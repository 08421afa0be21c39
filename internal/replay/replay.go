// Package replay applies scripted add and toggle steps to a task store.
//
// A replay script drives the same call surface as the terminal UI, which
// makes it useful for demos and for checking the store without a TTY:
//
//	{
//	  "schema_version": 1,
//	  "steps": [
//	    {"op": "add", "title": "Buy milk", "description": "2%"},
//	    {"op": "toggle", "index": 1},
//	    {"op": "toggle", "id": "T9"}
//	  ]
//	}
//
// Scripts are validated against an embedded JSON Schema before any step
// runs. A toggle by index refers to the task at that 1-based position when
// the step runs.
package replay

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/todoapp-go/internal/todo"
)

//go:embed replay.schema.json
var schemaJSON []byte

const schemaURL = "https://github.com/nibzard/todoapp-go/replay.schema.json"

// Step operations.
const (
	OpAdd    = "add"
	OpToggle = "toggle"
)

// Script is a parsed replay script.
type Script struct {
	SchemaVersion int    `json:"schema_version"`
	Steps         []Step `json:"steps"`
}

// Step is a single add or toggle operation.
type Step struct {
	Op          string `json:"op"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Index       int    `json:"index,omitempty"` // 1-based list position
	ID          string `json:"id,omitempty"`
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid  bool
	Errors []error
}

// Schema returns the embedded JSON Schema.
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = compile()
	})
	return compiledSchema, schemaErr
}

func compile() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// Validate checks data against the replay schema.
func Validate(data []byte) *ValidationResult {
	result := &ValidationResult{Valid: true}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &todo.ValidationError{
			Err: fmt.Errorf("parse replay script: %w", err),
		})
		return result
	}

	schema, err := compileSchema()
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err)
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

// Parse validates data and decodes it into a Script.
func Parse(data []byte) (*Script, error) {
	if result := Validate(data); !result.Valid {
		return nil, joinErrors(result.Errors)
	}

	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	return &s, nil
}

// Load reads and parses a replay script from path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Result summarizes an applied script.
type Result struct {
	Added   int
	Toggled int
	Missed  int // toggles that matched no task
}

// Apply runs the steps in order against store. A toggle that matches no
// task is skipped and counted in Result.Missed. logger may be nil.
func (s *Script) Apply(store *todo.Store, logger *log.Logger) Result {
	var res Result
	for i, step := range s.Steps {
		switch step.Op {
		case OpAdd:
			store.Add(step.Title, step.Description)
			res.Added++
		case OpToggle:
			id := step.ID
			if step.Index > 0 {
				id = idAt(store, step.Index)
			}
			if id != "" && store.ToggleComplete(id) {
				res.Toggled++
				continue
			}
			res.Missed++
			if logger != nil {
				logger.Warn("toggle matched no task", "step", i+1, "ref", step.ref())
			}
		default:
			// Unreachable for schema-validated scripts.
			if logger != nil {
				logger.Warn("unknown step", "step", i+1, "op", step.Op)
			}
		}
	}
	return res
}

func (s Step) ref() string {
	if s.Index > 0 {
		return "#" + strconv.Itoa(s.Index)
	}
	return s.ID
}

// idAt returns the ID of the task at 1-based position n, or "" if out of range.
func idAt(store *todo.Store, n int) string {
	tasks := store.List()
	if n < 1 || n > len(tasks) {
		return ""
	}
	return tasks[n-1].ID
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &todo.ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath converts "/steps/0/title" to "steps[0].title".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("invalid replay script: %s", strings.Join(msgs, "; "))
}
