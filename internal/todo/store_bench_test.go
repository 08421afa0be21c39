package todo

import (
	"fmt"
	"testing"
)

// BenchmarkAdd benchmarks appending tasks with UUID identifiers.
func BenchmarkAdd(b *testing.B) {
	s := NewStore()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Add("Task", "description")
	}
}

// BenchmarkToggleComplete benchmarks toggling in a list of 1000 tasks.
func BenchmarkToggleComplete(b *testing.B) {
	s := NewStore(WithIDGenerator(SequentialIDs("T")))
	for i := 0; i < 1000; i++ {
		s.Add(fmt.Sprintf("Task %d", i), "")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ToggleComplete(fmt.Sprintf("T%d", i%1000+1))
	}
}

// BenchmarkList benchmarks copying a list of 100 tasks.
func BenchmarkList(b *testing.B) {
	s := NewStore()
	for i := 0; i < 100; i++ {
		s.Add(fmt.Sprintf("Task %d", i), "")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.List()
	}
}
