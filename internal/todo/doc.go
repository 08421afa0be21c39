// Package todo holds the in-memory task list and its mutations.
//
// A Store owns an ordered list of tasks. New tasks are appended to the end
// and keep their position for the lifetime of the process; nothing is
// written to disk.
//
//	s := todo.NewStore()
//	milk := s.Add("Buy milk", "2%")
//	s.ToggleComplete(milk.ID)
//
// # Mutations
//
//   - Add appends a task with a fresh ID and IsComplete=false. It never fails.
//   - ToggleComplete flips IsComplete for the task with the given ID. An
//     unknown ID is a silent no-op.
//
// # Titles
//
// The store trusts its caller and accepts any title, including an empty one.
// Callers that enforce the non-empty title precondition use ValidateTitle,
// which reports a *ValidationError wrapping ErrEmptyTitle.
//
// # Change notification
//
// Subscribe registers an observer that is called synchronously after every
// applied mutation, outside the store lock, in mutation order.
//
// # Snapshot Format
//
// Snapshot output uses 2-space indentation and a trailing newline:
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {
//	      "id": "T1",
//	      "title": "Buy milk",
//	      "description": "2%",
//	      "is_complete": false
//	    }
//	  ]
//	}
package todo
