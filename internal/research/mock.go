package research

import (
	"context"

	"hiregen/internal/core"
)

// MockSource is a canned research source for tests and offline runs.
type MockSource struct {
	ManufacturerBundle core.FactBundle
	SearchBundle       core.FactBundle

	ManufacturerCalls int
	SearchCalls       int
}

// NewMockSource returns a mock that reports nothing found from either source.
func NewMockSource() *MockSource {
	return &MockSource{
		ManufacturerBundle: core.EmptyFactBundle("mock source"),
		SearchBundle:       core.EmptyFactBundle("mock source"),
	}
}

func (m *MockSource) FetchManufacturerFacts(_ context.Context, _, _ string) core.FactBundle {
	m.ManufacturerCalls++
	return m.ManufacturerBundle
}

func (m *MockSource) FetchSearchFacts(_ context.Context, _, _ string) core.FactBundle {
	m.SearchCalls++
	return m.SearchBundle
}
